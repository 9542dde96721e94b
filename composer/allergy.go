package composer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/i4mi/epd-gateway/lib/coding"
	"github.com/i4mi/epd-gateway/lib/fhirutil"
	"github.com/i4mi/epd-gateway/lib/profile"
	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// AllergyParams describes the allergy or intolerance itself.
// https://fhir.ch/ig/ch-allergyintolerance/StructureDefinition-ch-allergyintolerance.html
type AllergyParams struct {
	Id            string
	Meta          *fhir.Meta
	ImplicitRules string
	Language      string
	Text          *fhir.Narrative
	Contained     []json.RawMessage
	Extension     []fhir.Extension
	// AbatementDateTime records when the allergy resolved, carried as the
	// IPS abatement extension.
	AbatementDateTime  string
	Identifier         []fhir.Identifier
	ClinicalStatus     *fhir.CodeableConcept
	VerificationStatus *fhir.CodeableConcept
	Type               *fhir.AllergyIntoleranceType
	Category           []fhir.AllergyIntoleranceCategory
	Criticality        *fhir.AllergyIntoleranceCriticality
	Code               *fhir.CodeableConcept
	Patient            fhir.Patient
	Encounter          *fhir.Reference
	OnsetDateTime      string
	RecordedDate       string
	Recorder           *fhir.Reference
	Asserter           *fhir.Reference
	LastOccurrence     string
	Note               []fhir.Annotation
}

// EpisodeParams describes one adverse reaction event linked to an exposure to
// the substance. The openEHR and certainty fields are carried as extensions
// on the reaction.
type EpisodeParams struct {
	Id                  string
	Extension           []fhir.Extension
	Certainty           *fhir.CodeableConcept
	Duration            *fhir.Duration
	Location            *fhir.CodeableConcept
	ExposureDate        string
	ExposureDuration    *fhir.Duration
	ExposureDescription string
	Management          string
	Substance           *fhir.CodeableConcept
	Manifestation       []fhir.CodeableConcept
	Description         string
	Onset               string
	Severity            *fhir.AllergyIntoleranceSeverity
	ExposureRoute       *fhir.CodeableConcept
	Note                []fhir.Annotation
}

// CreateAllergyIntolerance composes an AllergyIntolerance resource conforming
// to the CH AllergyIntolerance profile. Episodes become the resource's
// reactions; when episodes are given, lastOccurrence is derived from the
// latest reaction onset.
//
// See https://fhir.ch/ig/ch-allergyintolerance/StructureDefinition-ch-allergyintolerance.html
func (c *Composer) CreateAllergyIntolerance(params AllergyParams, episodes []EpisodeParams) (*fhir.AllergyIntolerance, error) {
	if len(params.Patient.Identifier) == 0 {
		return nil, &PreconditionError{Message: "patient resource missing or incomplete"}
	}
	if params.Code == nil {
		return nil, &PreconditionError{Message: "property code is missing"}
	}
	verification := coding.FindCoding(params.VerificationStatus, profile.AllergyVerificationSystem)
	enteredInError := verification != nil &&
		coding.EqualsCode(*verification, profile.AllergyVerificationSystem, "entered-in-error")
	if params.ClinicalStatus == nil && !enteredInError {
		return nil, &PreconditionError{Message: "clinicalStatus must be present unless verificationStatus is entered-in-error"}
	}
	if params.ClinicalStatus != nil && enteredInError {
		return nil, &PreconditionError{Message: "clinicalStatus must not be present when verificationStatus is entered-in-error"}
	}

	id := params.Id
	if id == "" {
		id = uuid.NewString()
	}
	patientIdentifier := to.EmptyString(params.Patient.Identifier[0].System) + "|" + to.EmptyString(params.Patient.Identifier[0].Value)
	contained, err := fhirutil.EncodeContained(params.Contained)
	if err != nil {
		return nil, &PreconditionError{Message: "invalid contained resources: " + err.Error()}
	}

	resource := &fhir.AllergyIntolerance{
		Id:                 to.Ptr(id),
		Identifier:         params.Identifier,
		Meta:               profile.Set(params.Meta, profile.CHAllergyIntolerance),
		Code:               params.Code,
		Text:               params.Text,
		Contained:          contained,
		Extension:          params.Extension,
		ClinicalStatus:     params.ClinicalStatus,
		VerificationStatus: params.VerificationStatus,
		Type:               params.Type,
		Category:           params.Category,
		Criticality:        params.Criticality,
		Encounter:          params.Encounter,
		Recorder:           params.Recorder,
		Asserter:           params.Asserter,
		Note:               params.Note,
		Patient: fhir.Reference{
			Reference: to.Ptr("Patient/" + patientIdentifier),
		},
	}
	if params.ImplicitRules != "" {
		resource.ImplicitRules = to.Ptr(params.ImplicitRules)
	}
	if params.Language != "" {
		resource.Language = to.Ptr(params.Language)
	}
	if params.OnsetDateTime != "" {
		resource.OnsetDateTime = to.Ptr(params.OnsetDateTime)
	}
	if params.RecordedDate != "" {
		resource.RecordedDate = to.Ptr(params.RecordedDate)
	}
	if params.LastOccurrence != "" {
		resource.LastOccurrence = to.Ptr(params.LastOccurrence)
	}
	if params.AbatementDateTime != "" {
		resource.Extension = addExtension(resource.Extension, fhir.Extension{
			Url:           profile.AbatementDateTimeExtension,
			ValueDateTime: to.Ptr(params.AbatementDateTime),
		})
	}

	for index, episode := range episodes {
		resource.Reaction = append(resource.Reaction, buildReaction(index, episode))
	}
	if params.LastOccurrence == "" || len(episodes) > 0 {
		if latest := latestOnset(resource.Reaction); latest != "" {
			resource.LastOccurrence = to.Ptr(latest)
		}
	}
	return resource, nil
}

func buildReaction(index int, episode EpisodeParams) fhir.AllergyIntoleranceReaction {
	id := episode.Id
	if id == "" {
		id = fmt.Sprintf("episode %d", index+1)
	}
	reaction := fhir.AllergyIntoleranceReaction{
		Id:            to.Ptr(id),
		Extension:     episode.Extension,
		Substance:     episode.Substance,
		Manifestation: episode.Manifestation,
		Severity:      episode.Severity,
		ExposureRoute: episode.ExposureRoute,
		Note:          episode.Note,
	}
	if episode.Description != "" {
		reaction.Description = to.Ptr(episode.Description)
	}
	if episode.Onset != "" {
		reaction.Onset = to.Ptr(episode.Onset)
	}
	if episode.Certainty != nil {
		reaction.Extension = addExtension(reaction.Extension, fhir.Extension{
			Url:                  profile.AllergyCertaintyExtension,
			ValueCodeableConcept: episode.Certainty,
		})
	}
	if episode.Duration != nil {
		reaction.Extension = addExtension(reaction.Extension, fhir.Extension{
			Url:           profile.AllergyDurationExtension,
			ValueDuration: episode.Duration,
		})
	}
	if episode.ExposureDate != "" {
		reaction.Extension = addExtension(reaction.Extension, fhir.Extension{
			Url:           profile.OpenEHRExposureDateExtension,
			ValueDateTime: to.Ptr(episode.ExposureDate),
		})
	}
	if episode.ExposureDuration != nil {
		reaction.Extension = addExtension(reaction.Extension, fhir.Extension{
			Url:           profile.OpenEHRExposureDurationExtension,
			ValueDuration: episode.ExposureDuration,
		})
	}
	if episode.ExposureDescription != "" {
		reaction.Extension = addExtension(reaction.Extension, fhir.Extension{
			Url:         profile.OpenEHRExposureDescriptionExtension,
			ValueString: to.Ptr(episode.ExposureDescription),
		})
	}
	if episode.Location != nil {
		reaction.Extension = addExtension(reaction.Extension, fhir.Extension{
			Url:                  profile.OpenEHRLocationExtension,
			ValueCodeableConcept: episode.Location,
		})
	}
	if episode.Management != "" {
		reaction.Extension = addExtension(reaction.Extension, fhir.Extension{
			Url:         profile.OpenEHRManagementExtension,
			ValueString: to.Ptr(episode.Management),
		})
	}
	return reaction
}

// addExtension appends the extension unless one with the same URL is already
// present. Caller-supplied extensions win over derived ones.
func addExtension(extensions []fhir.Extension, extension fhir.Extension) []fhir.Extension {
	for _, existing := range extensions {
		if existing.Url == extension.Url {
			return extensions
		}
	}
	return append(extensions, extension)
}

// dateTimeLayouts covers the precision levels of a FHIR dateTime.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

func parseDateTime(value string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// latestOnset returns the onset of the most recent reaction, comparing the
// full timestamps. Unparseable onsets are skipped.
func latestOnset(reactions []fhir.AllergyIntoleranceReaction) string {
	var latest time.Time
	var result string
	for _, reaction := range reactions {
		if reaction.Onset == nil {
			continue
		}
		parsed, ok := parseDateTime(*reaction.Onset)
		if !ok {
			continue
		}
		if result == "" || parsed.After(latest) {
			latest = parsed
			result = *reaction.Onset
		}
	}
	return result
}
