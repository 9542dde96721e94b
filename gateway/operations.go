package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/i4mi/epd-gateway/lib/fhirutil"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// ProvideDocumentBundle uploads a document bundle (ITI-65 Provide Document
// Bundle). The bundle must be pre-built by the composer package. Returns the
// uploaded bundle echoed with the server's ids.
//
// See https://profiles.ihe.net/ITI/MHD/ITI-65.html
func (c *Client) ProvideDocumentBundle(ctx context.Context, documentBundle fhir.Bundle) (*fhir.Bundle, error) {
	raw, err := c.fetch(ctx, "", http.MethodPost, nil, documentBundle, nil)
	if err != nil {
		return nil, err
	}
	bundle, err := fhirutil.Decode[fhir.Bundle](raw)
	if err != nil {
		return nil, &InvalidResponseError{Message: err.Error()}
	}
	return &bundle, nil
}

// FindDocumentLists searches for submission sets by the given search
// parameters (ITI-66 Find Document Lists), e.g.
// {"patient.identifier": "urn:oid:1.1.1.99.1|0f5a8034"}.
// Returns an empty slice when nothing matches.
//
// See https://profiles.ihe.net/ITI/MHD/ITI-66.html
func (c *Client) FindDocumentLists(ctx context.Context, params url.Values) ([]fhir.List, error) {
	raw, err := c.fetch(ctx, "List", http.MethodGet, params, nil, nil)
	if err != nil {
		return nil, err
	}
	return collectSearchResult[fhir.List](raw)
}

// FindDocumentReferences searches for documents by the given search
// parameters (ITI-67 Find Document References). Returns an empty slice when
// nothing matches.
//
// See https://profiles.ihe.net/ITI/MHD/ITI-67.html
func (c *Client) FindDocumentReferences(ctx context.Context, params url.Values) ([]fhir.DocumentReference, error) {
	raw, err := c.fetch(ctx, "DocumentReference", http.MethodGet, params, nil, nil)
	if err != nil {
		return nil, err
	}
	return collectSearchResult[fhir.DocumentReference](raw)
}

// RetrieveDocument downloads the document behind the given DocumentReference
// (ITI-68 Retrieve Document), using the first content attachment that carries
// a URL.
//
// See https://profiles.ihe.net/ITI/MHD/ITI-68.html
func (c *Client) RetrieveDocument(ctx context.Context, reference fhir.DocumentReference) (string, error) {
	var link string
	for _, content := range reference.Content {
		if content.Attachment.Url != nil && *content.Attachment.Url != "" {
			link = *content.Attachment.Url
			break
		}
	}
	return c.RetrieveDocumentByURL(ctx, link)
}

// RetrieveDocumentByURL downloads a document from its direct URL and returns
// its content as text.
func (c *Client) RetrieveDocumentByURL(ctx context.Context, documentURL string) (string, error) {
	if !strings.HasPrefix(documentURL, "http") {
		return "", &InvalidArgumentError{Message: "no valid URL to document in reference"}
	}
	body, err := c.doRequest(ctx, documentURL, http.MethodGet, nil, nil, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// CrossReferenceIdentifiers requests the MPI-PID and EPR-SPID for a given
// local patient identifier (ITI-83 Mobile Patient Identifier Cross-reference
// Query). The source identifier joins system and value with a pipe, e.g.
// "urn:oid:2.16.756.5.30.1.178.1.1|PATIENT1"; target systems are optional
// OIDs restricting the queried identifier domains.
//
// See https://profiles.ihe.net/ITI/PIXm/ITI-83.html
func (c *Client) CrossReferenceIdentifiers(ctx context.Context, sourceIdentifier string, targetSystems ...string) (*fhir.Parameters, error) {
	if sourceIdentifier == "" {
		return nil, &InvalidArgumentError{Message: "sourceIdentifier is required"}
	}
	params := url.Values{}
	params.Set("sourceIdentifier", sourceIdentifier)
	for _, system := range targetSystems {
		params.Add("targetSystem", system)
	}
	raw, err := c.fetch(ctx, "Patient/$ihe-pix", http.MethodGet, params, nil, nil)
	if err != nil {
		return nil, err
	}
	resourceType, err := fhirutil.ResourceType(raw)
	if err != nil || resourceType != "Parameters" {
		return nil, &NotFoundError{Message: fmt.Sprintf("no entry found for given sourceIdentifier (%s)", sourceIdentifier)}
	}
	parameters, err := fhirutil.Decode[fhir.Parameters](raw)
	if err != nil {
		return nil, &InvalidResponseError{Message: err.Error()}
	}
	return &parameters, nil
}

// QueryPatientDemographics searches patients by demographic characteristics
// (ITI-78 Mobile Patient Demographics Query), e.g. {"given": "Alan"}.
// The gateway may answer with a single Patient or a searchset Bundle; both
// are normalized to a slice.
//
// See https://profiles.ihe.net/ITI/PDQm/ITI-78.html
func (c *Client) QueryPatientDemographics(ctx context.Context, params url.Values) ([]fhir.Patient, error) {
	raw, err := c.fetch(ctx, "Patient", http.MethodGet, params, nil, nil)
	if err != nil {
		return nil, err
	}
	resourceType, err := fhirutil.ResourceType(raw)
	if err != nil {
		return nil, &InvalidResponseError{Message: "no valid reply from server: " + err.Error()}
	}
	switch resourceType {
	case "Patient":
		patient, err := fhirutil.Decode[fhir.Patient](raw)
		if err != nil {
			return nil, &InvalidResponseError{Message: err.Error()}
		}
		return []fhir.Patient{patient}, nil
	case "Bundle":
		return collectSearchResult[fhir.Patient](raw)
	default:
		return nil, &InvalidResponseError{Message: "no valid reply from server: unexpected resourceType " + resourceType}
	}
}

// GetDocumentReference fetches a DocumentReference with a known id.
func (c *Client) GetDocumentReference(ctx context.Context, id string) (*fhir.DocumentReference, error) {
	raw, err := c.fetch(ctx, "DocumentReference/"+id, http.MethodGet, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	reference, err := fhirutil.Decode[fhir.DocumentReference](raw)
	if err != nil {
		return nil, &InvalidResponseError{Message: err.Error()}
	}
	return &reference, nil
}

// collectSearchResult decodes a searchset Bundle and collects its entries
// into a typed slice. Used by the find operations, which always answer with
// a Bundle.
func collectSearchResult[T any](raw []byte) ([]T, error) {
	bundle, err := fhirutil.Decode[fhir.Bundle](raw)
	if err != nil {
		return nil, &InvalidResponseError{Message: err.Error()}
	}
	result, err := fhirutil.CollectEntries[T](&bundle)
	if err != nil {
		return nil, &InvalidResponseError{Message: err.Error()}
	}
	return result, nil
}
