package coding

import (
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func EqualsCode(coding fhir.Coding, system string, value string) bool {
	return coding.System != nil && *coding.System == system &&
		coding.Code != nil && *coding.Code == value
}

// FindCoding returns the first coding of the concept with the given system,
// or nil if the concept holds no such coding.
func FindCoding(concept *fhir.CodeableConcept, system string) *fhir.Coding {
	if concept == nil {
		return nil
	}
	for i, c := range concept.Coding {
		if c.System != nil && *c.System == system {
			return &concept.Coding[i]
		}
	}
	return nil
}
