package composer

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/i4mi/epd-gateway/lib/fhirutil"
	"github.com/i4mi/epd-gateway/lib/profile"
	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/pkg/errors"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// File is a document to publish, with its raw content.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	// IsFHIR marks JSON content that is a FHIR resource, which upgrades the
	// attachment MIME type to application/fhir+json.
	IsFHIR bool
}

// AuthorRole describes in which role the author created the document.
type AuthorRole string

const (
	AuthorRolePatient        AuthorRole = "PAT"
	AuthorRoleHealthcarePro  AuthorRole = "HCP"
	AuthorRoleAssistant      AuthorRole = "ASS"
	AuthorRoleRepresentative AuthorRole = "REP"
	AuthorRoleTechnicalUser  AuthorRole = "TCU"
)

func (r AuthorRole) display() string {
	switch r {
	case AuthorRolePatient:
		return "Patient"
	case AuthorRoleHealthcarePro:
		return "Healthcare professional"
	case AuthorRoleAssistant:
		return "Assistant"
	case AuthorRoleRepresentative:
		return "Representative"
	case AuthorRoleTechnicalUser:
		return "Technical user"
	default:
		return string(r)
	}
}

// DocumentMetadata describes the document for registration in the patient's
// record. The codings come from the Swiss EPR value sets, see the codes
// package.
type DocumentMetadata struct {
	Title           string
	Description     string
	ContentLanguage string
	// SourceIdentifier identifies the publishing system, e.g.
	// "urn:oid:1.3.6.1.4.1.12559.11.13.2.5".
	SourceIdentifier      string
	CategoryCoding        fhir.Coding
	TypeCoding            fhir.Coding
	FacilityCoding        fhir.Coding
	PracticeSettingCoding fhir.Coding
	AuthorRole            AuthorRole
	// Author is an optional Practitioner, Patient or Organization resource
	// that is contained in the DocumentReference.
	Author any
}

// formatCoding declares the document format by MIME type only.
// https://fhir.ch/ig/ch-epr-term/ValueSet-DocumentEntry.formatCode.html
var formatCoding = fhir.Coding{
	System:  to.Ptr("urn:oid:1.3.6.1.4.1.19376.1.2.3"),
	Code:    to.Ptr("urn:ihe:iti:xds:2017:mimeTypeSufficient"),
	Display: to.Ptr("MimeType sufficient"),
}

// CreateDocumentBundle assembles a transaction bundle that publishes the file
// into the patient's record (ITI-65 Provide Document Bundle). The bundle
// carries three entries: the file content as Binary, a submission set List
// and a DocumentReference with the document metadata. The patient must carry
// an identifier in the MPI domain.
//
// See https://profiles.ihe.net/ITI/MHD/ITI-65.html
func (c *Composer) CreateDocumentBundle(patient fhir.Patient, file *File, metadata *DocumentMetadata) (*fhir.Bundle, error) {
	if len(patient.Identifier) == 0 {
		return nil, &PreconditionError{Message: "patient resource missing or incomplete"}
	}
	if file == nil {
		return nil, &PreconditionError{Message: "file is missing"}
	}
	if metadata == nil {
		return nil, &PreconditionError{Message: "meta data is missing"}
	}
	identifier := fhirutil.FindIdentifier(patient.Identifier, c.oids.MpiID)
	if identifier == nil || identifier.Value == nil {
		return nil, &PreconditionError{Message: "patient carries no identifier in the MPI domain (" + c.oids.MpiID + ")"}
	}
	data, err := encodeBase64(file.Data)
	if err != nil {
		return nil, err
	}

	bundleID := "bundle-id-" + uuid.NewString()
	dataID := "urn:uuid:" + uuid.NewString()
	documentID := "urn:uuid:" + uuid.NewString()
	submissionSetID := "urn:uuid:" + uuid.NewString()
	masterID := "urn:oid:" + uuid.NewString()

	patientIdentifier := c.oids.MpiID + "-" + *identifier.Value
	subject := fhir.Reference{
		Reference: to.Ptr(c.baseURL + "Patient/" + patientIdentifier),
	}
	today := time.Now().Format("2006-01-02")
	mimeType := file.ContentType
	if mimeType == "application/json" && file.IsFHIR {
		mimeType = "application/fhir+json"
	}

	binary := fhir.Binary{
		ContentType: mimeType,
		Data:        to.Ptr(data),
	}
	submissionSet := c.submissionSet(submissionSetID, documentID, subject, today, metadata)
	reference, err := c.documentReference(patient, documentID, dataID, masterID, subject, mimeType, metadata)
	if err != nil {
		return nil, err
	}

	bundle := &fhir.Bundle{
		Id: to.Ptr(bundleID),
		Meta: &fhir.Meta{
			Profile: []string{profile.MHDProvideBundle},
		},
		Type: fhir.BundleTypeTransaction,
	}
	for _, entry := range []struct {
		fullURL  string
		resource any
	}{
		{dataID, binary},
		{submissionSetID, submissionSet},
		{documentID, reference},
	} {
		raw, err := json.Marshal(entry.resource)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal bundle entry")
		}
		bundle.Entry = append(bundle.Entry, fhir.BundleEntry{
			FullUrl:  to.Ptr(entry.fullURL),
			Resource: raw,
			Request: &fhir.BundleEntryRequest{
				Method: fhir.HTTPVerbPOST,
				Url:    entry.fullURL,
			},
		})
	}
	return bundle, nil
}

// submissionSet builds the List resource that groups the published documents
// into one submission.
func (c *Composer) submissionSet(submissionSetID string, documentID string, subject fhir.Reference, date string, metadata *DocumentMetadata) fhir.List {
	return fhir.List{
		Id: to.Ptr(submissionSetID),
		Meta: &fhir.Meta{
			Profile: []string{profile.MHDSubmissionSet},
		},
		Extension: []fhir.Extension{
			{
				Url: profile.MHDDesignationTypeExtension,
				ValueCodeableConcept: &fhir.CodeableConcept{
					Coding: []fhir.Coding{
						{
							System:  to.Ptr("http://snomed.info/sct"),
							Code:    to.Ptr("71388002"),
							Display: to.Ptr("Procedure (procedure)"),
						},
					},
				},
			},
			{
				Url: profile.MHDSourceIDExtension,
				ValueIdentifier: &fhir.Identifier{
					Value: to.Ptr(metadata.SourceIdentifier),
				},
			},
		},
		Identifier: []fhir.Identifier{
			{
				Use:    to.Ptr(fhir.IdentifierUseOfficial),
				System: to.Ptr("urn:ietf:rfc:3986"),
				Value:  to.Ptr(submissionSetID),
			},
		},
		Status: fhir.ListStatusCurrent,
		Mode:   fhir.ListModeWorking,
		Title:  to.Ptr(metadata.Title),
		Code: &fhir.CodeableConcept{
			Coding: []fhir.Coding{
				{
					System:  to.Ptr(profile.MHDListTypeSystem),
					Code:    to.Ptr("submissionset"),
					Display: to.Ptr("Submission Set"),
				},
			},
		},
		Subject: &subject,
		Entry: []fhir.ListEntry{
			{Item: fhir.Reference{Reference: to.Ptr(documentID)}},
		},
		Date: to.Ptr(date),
	}
}

// documentReference builds the DocumentReference that registers the document
// with its metadata and links it to the Binary content.
func (c *Composer) documentReference(patient fhir.Patient, documentID string, dataID string, masterID string, subject fhir.Reference, mimeType string, metadata *DocumentMetadata) (*fhir.DocumentReference, error) {
	if patient.Id == nil {
		patient.Id = to.Ptr("source-patient")
	}
	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal contained patient")
	}
	contained, err := fhirutil.EncodeContained([]json.RawMessage{patientJSON})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode contained patient")
	}
	reference := &fhir.DocumentReference{
		Meta: &fhir.Meta{
			Profile: []string{profile.CHDocumentReferenceEPR},
		},
		Contained: contained,
		MasterIdentifier: &fhir.Identifier{
			Value: to.Ptr(masterID),
		},
		Extension: []fhir.Extension{
			{
				Url: profile.CHAuthorRoleExtension,
				ValueCoding: &fhir.Coding{
					System:  to.Ptr(profile.CHAuthorRoleSystem),
					Code:    to.Ptr(string(metadata.AuthorRole)),
					Display: to.Ptr(metadata.AuthorRole.display()),
				},
			},
		},
		Identifier: []fhir.Identifier{
			{
				Use:    to.Ptr(fhir.IdentifierUseOfficial),
				System: to.Ptr("urn:ietf:rfc:3986"),
				Value:  to.Ptr(documentID),
			},
		},
		Status: fhir.DocumentReferenceStatusCurrent,
		Type: &fhir.CodeableConcept{
			Coding: []fhir.Coding{metadata.TypeCoding},
		},
		Category: []fhir.CodeableConcept{
			{Coding: []fhir.Coding{metadata.CategoryCoding}},
		},
		Subject:     &subject,
		Date:        to.Ptr(time.Now().Format(time.RFC3339)),
		Description: to.Ptr(metadata.Description),
		SecurityLabel: []fhir.CodeableConcept{
			{
				Coding: []fhir.Coding{
					{
						System:  to.Ptr("http://snomed.info/sct"),
						Code:    to.Ptr("17621005"),
						Display: to.Ptr("Normal (qualifier value)"),
					},
				},
			},
		},
		Content: []fhir.DocumentReferenceContent{
			{
				Attachment: fhir.Attachment{
					ContentType: to.Ptr(mimeType),
					Language:    to.Ptr(metadata.ContentLanguage),
					Url:         to.Ptr(dataID),
					Title:       to.Ptr(metadata.Title),
				},
				Format: &formatCoding,
			},
		},
		Context: &fhir.DocumentReferenceContext{
			FacilityType: &fhir.CodeableConcept{
				Coding: []fhir.Coding{metadata.FacilityCoding},
			},
			PracticeSetting: &fhir.CodeableConcept{
				Coding: []fhir.Coding{metadata.PracticeSettingCoding},
			},
			SourcePatientInfo: &fhir.Reference{
				Reference: to.Ptr("#" + *patient.Id),
			},
		},
	}
	if metadata.Author != nil {
		if err := containAuthor(reference, metadata.Author); err != nil {
			return nil, err
		}
	}
	return reference, nil
}

// containAuthor embeds the author resource in the DocumentReference and adds
// a local author reference to it.
func containAuthor(reference *fhir.DocumentReference, author any) error {
	raw, err := json.Marshal(author)
	if err != nil {
		return errors.Wrap(err, "failed to marshal document author")
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return errors.Wrap(err, "document author is not a FHIR resource")
	}
	resourceType, _ := fields["resourceType"].(string)
	if resourceType == "" {
		return &PreconditionError{Message: "document author carries no resourceType"}
	}
	id, _ := fields["id"].(string)
	if id == "" {
		id = "document-author"
		fields["id"] = id
		if raw, err = json.Marshal(fields); err != nil {
			return errors.Wrap(err, "failed to marshal document author")
		}
	}
	reference.Contained, err = fhirutil.AppendContained(reference.Contained, raw)
	if err != nil {
		return errors.Wrap(err, "failed to embed document author")
	}
	reference.Author = append(reference.Author, fhir.Reference{
		Type:      to.Ptr(resourceType),
		Reference: to.Ptr("#" + id),
	})
	return nil
}

// encodeBase64 prepares file content for the Binary resource. Content that
// already is a base64 data URL is passed through without re-encoding.
func encodeBase64(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &PreconditionError{Message: "file is empty"}
	}
	content := string(data)
	if index := strings.Index(content, ";base64,"); index > -1 {
		return content[index+len(";base64,"):], nil
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
