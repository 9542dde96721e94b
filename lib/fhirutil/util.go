package fhirutil

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// ResourceType extracts the resourceType from a raw FHIR resource, since the
// zorgbijjou/fhir-models package does not provide a direct way to access it.
func ResourceType(raw json.RawMessage) (string, error) {
	resource := struct {
		ResourceType string `json:"resourceType"`
	}{}
	if err := json.Unmarshal(raw, &resource); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal resource")
	}
	if resource.ResourceType == "" {
		return "", errors.New("resourceType is empty in resource")
	}
	return resource.ResourceType, nil
}

// Decode unmarshals a raw FHIR resource (e.g. a bundle entry or a contained
// resource) into the given model type.
func Decode[T any](raw json.RawMessage) (T, error) {
	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, errors.Wrapf(err, "failed to decode resource into %T", result)
	}
	return result, nil
}

// FindIdentifier returns the first identifier with the given system, or nil.
func FindIdentifier(identifiers []fhir.Identifier, system string) *fhir.Identifier {
	for i, identifier := range identifiers {
		if identifier.System != nil && *identifier.System == system {
			return &identifiers[i]
		}
	}
	return nil
}
