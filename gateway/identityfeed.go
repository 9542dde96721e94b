package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/i4mi/epd-gateway/lib/fhirutil"
	"github.com/i4mi/epd-gateway/lib/profile"
	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/rs/zerolog/log"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// FeedAction selects the intent of a patient identity feed message.
type FeedAction string

const (
	FeedActionAdd    FeedAction = "ADD"
	FeedActionUpdate FeedAction = "UPDATE"
	FeedActionMerge  FeedAction = "MERGE"
	FeedActionRemove FeedAction = "REMOVE"
)

// FeedResult is the outcome of a patient identity feed transaction. Warning is
// set for actions the gateway accepts but typically refuses to execute.
type FeedResult struct {
	Bundle  *fhir.Bundle
	Warning string
}

// PatientIdentityFeed announces a change of a patient's identity to the
// gateway (ITI-93 Mobile Patient Identity Feed) as a FHIR message bundle.
// The patient must embed its managing organization as a contained resource
// and reference it locally. mergePatient is the surviving target patient and
// is only used (and required) with FeedActionMerge.
//
// See https://profiles.ihe.net/ITI/PMIR/ITI-93.html
func (c *Client) PatientIdentityFeed(ctx context.Context, patient fhir.Patient, action FeedAction, mergePatient *fhir.Patient) (*FeedResult, error) {
	if err := validateIdentityEnvelope(patient); err != nil {
		return nil, err
	}
	if patient.Id == nil || *patient.Id == "" {
		patient.Id = to.Ptr("temporary-patient-id")
	}
	patientID := *patient.Id

	result := &FeedResult{}
	var method fhir.HTTPVerb
	switch action {
	case FeedActionAdd:
		method = fhir.HTTPVerbPOST
	case FeedActionUpdate:
		method = fhir.HTTPVerbPUT
	case FeedActionMerge:
		method = fhir.HTTPVerbPUT
		if err := prepareMerge(&patient, mergePatient); err != nil {
			return nil, err
		}
	case FeedActionRemove:
		method = fhir.HTTPVerbDELETE
		result.Warning = "gateways commonly refuse to delete patients, expect the feed to be rejected"
		log.Warn().Msg("Sending patient identity feed with DELETE, gateways commonly refuse this action")
	default:
		return nil, &InvalidArgumentError{Message: fmt.Sprintf("unsupported identity feed action: %s", action)}
	}

	header := fhir.MessageHeader{
		Id:       to.Ptr("1"),
		EventUri: to.Ptr(profile.PMIRPatientFeedEvent),
		Source: fhir.MessageHeaderSource{
			Endpoint: c.config.SourceEndpoint,
		},
		Destination: []fhir.MessageHeaderDestination{
			{Endpoint: c.config.TargetEndpoint},
		},
		Focus: []fhir.Reference{
			{Reference: to.Ptr("Patient/" + patientID)},
		},
	}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, &InvalidArgumentError{Message: "failed to marshal message header: " + err.Error()}
	}
	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, &InvalidArgumentError{Message: "failed to marshal patient: " + err.Error()}
	}

	message := fhir.Bundle{
		Type: fhir.BundleTypeMessage,
		Entry: []fhir.BundleEntry{
			{
				FullUrl:  to.Ptr(c.config.BaseURL + "MessageHeader/1"),
				Resource: headerJSON,
			},
			{
				FullUrl:  to.Ptr(c.config.BaseURL + "Patient/" + patientID),
				Resource: patientJSON,
				Request: &fhir.BundleEntryRequest{
					Url:    c.config.BaseURL + "Patient",
					Method: method,
				},
			},
		},
	}
	if action == FeedActionMerge {
		// A merge carries the change as a history bundle so the gateway sees
		// the superseded patient state and the surviving target together.
		history := fhir.Bundle{
			Id:   to.Ptr("temporary-bundle-id"),
			Type: fhir.BundleTypeHistory,
			Entry: []fhir.BundleEntry{
				{
					Resource: patientJSON,
					Request: &fhir.BundleEntryRequest{
						Url:    c.config.BaseURL + "Patient",
						Method: fhir.HTTPVerbPUT,
					},
				},
			},
		}
		historyJSON, err := json.Marshal(history)
		if err != nil {
			return nil, &InvalidArgumentError{Message: "failed to marshal history bundle: " + err.Error()}
		}
		message.Entry[1] = fhir.BundleEntry{Resource: historyJSON}
	}

	raw, err := c.fetch(ctx, c.config.MessageEndpoint, http.MethodPost, nil, message, nil)
	if err != nil {
		return nil, err
	}
	response, err := fhirutil.Decode[fhir.Bundle](raw)
	if err != nil {
		return nil, &InvalidResponseError{Message: err.Error()}
	}
	result.Bundle = &response
	return result, nil
}

// UpdatePatientIdentity would perform a conditional patient update (ITI-104
// Patient Identity Feed FHIR). The Swiss EPR gateways do not accept ITI-104
// yet, so the operation is not available.
func (c *Client) UpdatePatientIdentity(ctx context.Context, patient fhir.Patient) (*fhir.Patient, error) {
	return nil, &InvalidArgumentError{Message: "conditional patient updates are not supported by the gateway, use PatientIdentityFeed instead"}
}

// validateIdentityEnvelope checks that the patient embeds its managing
// organization as a contained resource and references it locally. The PMIR
// profile requires the feed source organization to travel with the patient.
func validateIdentityEnvelope(patient fhir.Patient) error {
	resources, err := fhirutil.ContainedResources(patient.Contained)
	if err != nil || len(resources) == 0 {
		return &InvalidArgumentError{Message: "patient must contain its managing organization as a contained resource"}
	}
	var contained struct {
		Id string `json:"id"`
	}
	if err := json.Unmarshal(resources[0], &contained); err != nil || contained.Id == "" {
		return &InvalidArgumentError{Message: "contained managing organization must carry an id"}
	}
	if patient.ManagingOrganization == nil ||
		to.EmptyString(patient.ManagingOrganization.Reference) != "#"+contained.Id {
		return &InvalidArgumentError{Message: "managingOrganization must reference the contained organization (#" + contained.Id + ")"}
	}
	return nil
}

// prepareMerge links the superseded patient to the surviving target and
// embeds the target as a contained resource.
func prepareMerge(patient *fhir.Patient, mergePatient *fhir.Patient) error {
	if mergePatient == nil {
		return &InvalidArgumentError{Message: "merge requires a target patient"}
	}
	target := *mergePatient
	if target.Id == nil || *target.Id == "" || *target.Id == *patient.Id {
		target.Id = to.Ptr("temporary-mergePatient-id")
	}
	target.Active = to.Ptr(true)
	if target.ManagingOrganization == nil {
		target.ManagingOrganization = patient.ManagingOrganization
	}
	patient.Active = to.Ptr(false)
	patient.Link = []fhir.PatientLink{
		{
			Other: fhir.Reference{Reference: to.Ptr("#" + *target.Id)},
			Type:  fhir.LinkTypeReplacedBy,
		},
	}
	targetJSON, err := json.Marshal(target)
	if err != nil {
		return &InvalidArgumentError{Message: "failed to marshal merge target: " + err.Error()}
	}
	patient.Contained, err = fhirutil.AppendContained(patient.Contained, targetJSON)
	if err != nil {
		return &InvalidArgumentError{Message: "failed to embed merge target: " + err.Error()}
	}
	return nil
}
