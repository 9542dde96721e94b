package fhirutil

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ContainedResources splits a resource's contained field into the raw JSON of
// the individual contained resources. The field holds the JSON of the whole
// contained array; an absent field yields a nil slice.
func ContainedResources(field json.RawMessage) ([]json.RawMessage, error) {
	if len(field) == 0 {
		return nil, nil
	}
	var resources []json.RawMessage
	if err := json.Unmarshal(field, &resources); err != nil {
		return nil, errors.Wrap(err, "failed to decode contained resources")
	}
	return resources, nil
}

// EncodeContained packs per-resource raw JSON into a contained field. An
// empty slice yields nil, so the field stays absent on the resource.
func EncodeContained(resources []json.RawMessage) (json.RawMessage, error) {
	if len(resources) == 0 {
		return nil, nil
	}
	field, err := json.Marshal(resources)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode contained resources")
	}
	return field, nil
}

// AppendContained adds a resource to a possibly absent contained field.
func AppendContained(field json.RawMessage, resource json.RawMessage) (json.RawMessage, error) {
	resources, err := ContainedResources(field)
	if err != nil {
		return nil, err
	}
	return EncodeContained(append(resources, resource))
}
