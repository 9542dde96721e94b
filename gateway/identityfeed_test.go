package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/i4mi/epd-gateway/lib/fhirutil"
	"github.com/i4mi/epd-gateway/lib/profile"
	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/i4mi/epd-gateway/test/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func feedTestClient(t *testing.T) (*Client, *fhir.Bundle, *int) {
	t.Helper()
	received := &fhir.Bundle{}
	requests := new(int)
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/fhir/$process-message", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(received))
		_, _ = w.Write([]byte(`{"resourceType":"Bundle","type":"message","id":"response-id"}`))
	}))
	return client, received, requests
}

func TestPatientIdentityFeedAdd(t *testing.T) {
	client, received, _ := feedTestClient(t)
	patient := testdata.IdentityEnvelopePatient(client.Oids())

	result, err := client.PatientIdentityFeed(context.Background(), patient, FeedActionAdd, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Warning)
	assert.Equal(t, "response-id", *result.Bundle.Id)

	assert.Equal(t, fhir.BundleTypeMessage, received.Type)
	require.Len(t, received.Entry, 2)

	header, err := fhirutil.Decode[fhir.MessageHeader](received.Entry[0].Resource)
	require.NoError(t, err)
	assert.Equal(t, profile.PMIRPatientFeedEvent, *header.EventUri)
	assert.Equal(t, "http://source.example/fhir", header.Source.Endpoint)
	require.Len(t, header.Destination, 1)
	assert.Equal(t, "http://target.example/fhir", header.Destination[0].Endpoint)
	require.Len(t, header.Focus, 1)
	assert.Equal(t, "Patient/temporary-patient-id", *header.Focus[0].Reference)
	assert.Contains(t, *received.Entry[0].FullUrl, "MessageHeader/1")

	patientEntry := received.Entry[1]
	require.NotNil(t, patientEntry.Request)
	assert.Equal(t, fhir.HTTPVerbPOST, patientEntry.Request.Method)
	assert.Contains(t, *patientEntry.FullUrl, "Patient/temporary-patient-id")

	sent, err := fhirutil.Decode[fhir.Patient](patientEntry.Resource)
	require.NoError(t, err)
	assert.Equal(t, "temporary-patient-id", *sent.Id)
	sentContained, err := fhirutil.ContainedResources(sent.Contained)
	require.NoError(t, err)
	require.Len(t, sentContained, 1)
}

func TestPatientIdentityFeedUpdate(t *testing.T) {
	client, received, _ := feedTestClient(t)
	patient := testdata.IdentityEnvelopePatient(client.Oids())
	patient.Id = to.Ptr("existing-id")

	_, err := client.PatientIdentityFeed(context.Background(), patient, FeedActionUpdate, nil)
	require.NoError(t, err)
	require.Len(t, received.Entry, 2)
	assert.Equal(t, fhir.HTTPVerbPUT, received.Entry[1].Request.Method)
	assert.Contains(t, *received.Entry[1].FullUrl, "Patient/existing-id")
}

func TestPatientIdentityFeedMerge(t *testing.T) {
	t.Run("wraps change in history bundle", func(t *testing.T) {
		client, received, _ := feedTestClient(t)
		patient := testdata.IdentityEnvelopePatient(client.Oids())
		patient.Id = to.Ptr("old-patient")
		mergePatient := fhir.Patient{
			Identifier: []fhir.Identifier{
				{System: to.Ptr(client.Oids().MpiID), Value: to.Ptr("surviving")},
			},
		}

		_, err := client.PatientIdentityFeed(context.Background(), patient, FeedActionMerge, &mergePatient)
		require.NoError(t, err)
		require.Len(t, received.Entry, 2)

		// The second entry is a history bundle, not a plain patient entry.
		assert.Nil(t, received.Entry[1].Request)
		history, err := fhirutil.Decode[fhir.Bundle](received.Entry[1].Resource)
		require.NoError(t, err)
		assert.Equal(t, fhir.BundleTypeHistory, history.Type)
		assert.Equal(t, "temporary-bundle-id", *history.Id)
		require.Len(t, history.Entry, 1)
		require.NotNil(t, history.Entry[0].Request)
		assert.Equal(t, fhir.HTTPVerbPUT, history.Entry[0].Request.Method)

		superseded, err := fhirutil.Decode[fhir.Patient](history.Entry[0].Resource)
		require.NoError(t, err)
		assert.False(t, *superseded.Active)
		require.Len(t, superseded.Link, 1)
		assert.Equal(t, fhir.LinkTypeReplacedBy, superseded.Link[0].Type)
		assert.Equal(t, "#temporary-mergePatient-id", *superseded.Link[0].Other.Reference)
		// Managing organization plus merge target.
		containedResources, err := fhirutil.ContainedResources(superseded.Contained)
		require.NoError(t, err)
		require.Len(t, containedResources, 2)

		target, err := fhirutil.Decode[fhir.Patient](containedResources[1])
		require.NoError(t, err)
		assert.Equal(t, "temporary-mergePatient-id", *target.Id)
		assert.True(t, *target.Active)
		require.NotNil(t, target.ManagingOrganization)
		assert.Equal(t, "#managing-org", *target.ManagingOrganization.Reference)
	})
	t.Run("merge without target is rejected before any request", func(t *testing.T) {
		client, _, requests := feedTestClient(t)
		patient := testdata.IdentityEnvelopePatient(client.Oids())

		_, err := client.PatientIdentityFeed(context.Background(), patient, FeedActionMerge, nil)
		var argErr *InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Zero(t, *requests)
	})
}

func TestPatientIdentityFeedRemove(t *testing.T) {
	client, received, _ := feedTestClient(t)
	patient := testdata.IdentityEnvelopePatient(client.Oids())

	result, err := client.PatientIdentityFeed(context.Background(), patient, FeedActionRemove, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Warning)
	require.Len(t, received.Entry, 2)
	assert.Equal(t, fhir.HTTPVerbDELETE, received.Entry[1].Request.Method)
}

func TestPatientIdentityFeedValidation(t *testing.T) {
	client, _, requests := feedTestClient(t)

	t.Run("missing contained organization", func(t *testing.T) {
		_, err := client.PatientIdentityFeed(context.Background(), fhir.Patient{}, FeedActionAdd, nil)
		var argErr *InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Contains(t, err.Error(), "contain")
	})
	t.Run("managing organization not referencing contained resource", func(t *testing.T) {
		patient := testdata.IdentityEnvelopePatient(client.Oids())
		patient.ManagingOrganization.Reference = to.Ptr("Organization/elsewhere")
		_, err := client.PatientIdentityFeed(context.Background(), patient, FeedActionAdd, nil)
		var argErr *InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Contains(t, err.Error(), "managingOrganization")
	})
	t.Run("unknown action", func(t *testing.T) {
		patient := testdata.IdentityEnvelopePatient(client.Oids())
		_, err := client.PatientIdentityFeed(context.Background(), patient, FeedAction("ARCHIVE"), nil)
		var argErr *InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Contains(t, err.Error(), "unsupported identity feed action: ARCHIVE")
	})
	assert.Zero(t, *requests)
}

func TestUpdatePatientIdentityNotSupported(t *testing.T) {
	client, _, requests := feedTestClient(t)
	_, err := client.UpdatePatientIdentity(context.Background(), fhir.Patient{})
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Contains(t, err.Error(), "PatientIdentityFeed")
	assert.Zero(t, *requests)
}
