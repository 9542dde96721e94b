package fhirutil

import (
	"encoding/json"
	"strings"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// CollectEntries unmarshals all non-empty entry resources of the bundle into
// the given model type, in entry order. An empty bundle yields an empty,
// non-nil slice.
func CollectEntries[T any](bundle *fhir.Bundle) ([]T, error) {
	result := make([]T, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		if entry.Resource == nil {
			continue
		}
		res, err := Decode[T](entry.Resource)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

// NextLink returns the URL of the bundle's pagination link with relation
// "next", or nil if the bundle declares no such link.
func NextLink(bundle *fhir.Bundle) *string {
	for _, link := range bundle.Link {
		if link.Relation == "next" {
			return &link.Url
		}
	}
	return nil
}

// LinkedResource resolves a reference string to a resource contained in the
// bundle, by matching the last path segment of the reference against entry
// resource ids. Consumers rendering search results use it to chase
// submission set entries to their DocumentReference without another gateway
// round trip. Returns nil if nothing matches.
func LinkedResource(bundle *fhir.Bundle, reference string) json.RawMessage {
	if reference == "" {
		return nil
	}
	parts := strings.Split(reference, "/")
	id := parts[len(parts)-1]
	for _, entry := range bundle.Entry {
		if entry.Resource == nil {
			continue
		}
		res := struct {
			ID string `json:"id"`
		}{}
		if err := json.Unmarshal(entry.Resource, &res); err != nil {
			continue
		}
		if res.ID == id {
			return entry.Resource
		}
	}
	return nil
}
