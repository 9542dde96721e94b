package fhirutil

import (
	"encoding/json"
	"testing"

	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func TestContainedRoundTrip(t *testing.T) {
	org, err := json.Marshal(fhir.Organization{Id: to.Ptr("managing-org")})
	require.NoError(t, err)

	field, err := EncodeContained([]json.RawMessage{org})
	require.NoError(t, err)

	// The field carries the whole contained array, so it serializes as
	// "contained":[{...}] on the owning resource.
	raw, err := json.Marshal(fhir.Patient{Contained: field})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"contained":[{`)

	var decoded fhir.Patient
	require.NoError(t, json.Unmarshal(raw, &decoded))
	resources, err := ContainedResources(decoded.Contained)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	contained, err := Decode[fhir.Organization](resources[0])
	require.NoError(t, err)
	assert.Equal(t, "managing-org", *contained.Id)
}

func TestContainedAbsentField(t *testing.T) {
	resources, err := ContainedResources(nil)
	require.NoError(t, err)
	assert.Nil(t, resources)

	field, err := EncodeContained(nil)
	require.NoError(t, err)
	assert.Nil(t, field)
}

func TestAppendContained(t *testing.T) {
	first, err := AppendContained(nil, json.RawMessage(`{"resourceType":"Organization","id":"one"}`))
	require.NoError(t, err)
	second, err := AppendContained(first, json.RawMessage(`{"resourceType":"Patient","id":"two"}`))
	require.NoError(t, err)

	resources, err := ContainedResources(second)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	_, err = ContainedResources(json.RawMessage(`{"not":"an array"}`))
	require.Error(t, err)
}
