// Package testdata provides FHIR resources shared by package tests.
package testdata

import (
	"encoding/json"

	"github.com/i4mi/epd-gateway/lib/fhirutil"
	"github.com/i4mi/epd-gateway/lib/oid"
	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Oids returns the identifier domains of the EPD Playground test environment.
func Oids() oid.Registry {
	return oid.Registry{
		MpiID:   "urn:oid:1.1.1.99.1",
		EprSpid: "urn:oid:2.16.756.5.30.1.127.3.10.3",
		Local:   "urn:oid:2.16.756.5.30.1.178.1.1",
		Ahv:     "urn:oid:2.16.756.5.32",
		App:     "urn:oid:1.3.6.1.4.1.12559.11.13.2.5",
	}
}

// IdentityEnvelopePatient returns a patient suitable for the patient identity
// feed, with its managing organization contained and referenced locally.
func IdentityEnvelopePatient(reg oid.Registry) fhir.Patient {
	org := fhir.Organization{
		Id:   to.Ptr("managing-org"),
		Name: to.Ptr("Klinik Höheweg"),
		Identifier: []fhir.Identifier{
			{System: to.Ptr(reg.Local), Value: to.Ptr("Klinik Höheweg")},
		},
	}
	orgJSON, _ := json.Marshal(org)
	contained, _ := fhirutil.EncodeContained([]json.RawMessage{orgJSON})
	return fhir.Patient{
		Identifier: []fhir.Identifier{
			{System: to.Ptr(reg.Local), Value: to.Ptr("PATIENT1")},
			{System: to.Ptr(reg.MpiID), Value: to.Ptr("0f5a8034-3c8a-4796-bd39-d3ea877a4155")},
		},
		Name: []fhir.HumanName{
			{Family: to.Ptr("Muster"), Given: []string{"Max"}},
		},
		Gender:    to.Ptr(fhir.AdministrativeGenderMale),
		BirthDate: to.Ptr("1989-04-21"),
		Contained: contained,
		ManagingOrganization: &fhir.Reference{
			Reference: to.Ptr("#managing-org"),
		},
	}
}
