package fhirutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func TestCollectEntries(t *testing.T) {
	t.Run("collects typed resources in entry order", func(t *testing.T) {
		bundle := &fhir.Bundle{
			Entry: []fhir.BundleEntry{
				{Resource: json.RawMessage(`{"resourceType":"Patient","id":"one"}`)},
				{Resource: nil},
				{Resource: json.RawMessage(`{"resourceType":"Patient","id":"two"}`)},
			},
		}
		patients, err := CollectEntries[fhir.Patient](bundle)
		require.NoError(t, err)
		require.Len(t, patients, 2)
		require.Equal(t, "one", *patients[0].Id)
		require.Equal(t, "two", *patients[1].Id)
	})
	t.Run("empty bundle yields empty non-nil slice", func(t *testing.T) {
		patients, err := CollectEntries[fhir.Patient](&fhir.Bundle{})
		require.NoError(t, err)
		require.NotNil(t, patients)
		require.Empty(t, patients)
	})
}

func TestNextLink(t *testing.T) {
	t.Run("next link present", func(t *testing.T) {
		bundle := &fhir.Bundle{
			Link: []fhir.BundleLink{
				{Relation: "self", Url: "http://example.com/fhir/List"},
				{Relation: "next", Url: "http://example.com/fhir/List?page=2"},
			},
		}
		next := NextLink(bundle)
		require.NotNil(t, next)
		require.Equal(t, "http://example.com/fhir/List?page=2", *next)
	})
	t.Run("no next link", func(t *testing.T) {
		require.Nil(t, NextLink(&fhir.Bundle{Link: []fhir.BundleLink{{Relation: "self", Url: "x"}}}))
		require.Nil(t, NextLink(&fhir.Bundle{}))
	})
}

func TestLinkedResource(t *testing.T) {
	bundle := &fhir.Bundle{
		Entry: []fhir.BundleEntry{
			{Resource: json.RawMessage(`{"resourceType":"Patient","id":"pat-1"}`)},
			{Resource: json.RawMessage(`{"resourceType":"Organization","id":"org-1"}`)},
		},
	}
	t.Run("resolves by last path segment", func(t *testing.T) {
		raw := LinkedResource(bundle, "Organization/org-1")
		require.NotNil(t, raw)
		resourceType, err := ResourceType(raw)
		require.NoError(t, err)
		require.Equal(t, "Organization", resourceType)
	})
	t.Run("unknown reference", func(t *testing.T) {
		require.Nil(t, LinkedResource(bundle, "Patient/unknown"))
	})
	t.Run("empty reference", func(t *testing.T) {
		require.Nil(t, LinkedResource(bundle, ""))
	})
}
