// Package codes provides the SNOMED CT codings of the Swiss EPR value sets
// for document metadata, with display strings in the five supported
// languages.
//
// https://fhir.ch/ig/ch-epr-term/ValueSet-DocumentEntry.classCode.html
package codes

import (
	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Language selects the display language of a code.
type Language string

const (
	LanguageEN Language = "en"
	LanguageDE Language = "de"
	LanguageFR Language = "fr"
	LanguageIT Language = "it"
	LanguageRM Language = "rm"
)

// Code is a SNOMED CT coding with its localized display strings. The Coding
// carries the English display and can be used directly in document metadata.
type Code struct {
	Coding   fhir.Coding
	Displays map[Language]string
}

const snomed = "http://snomed.info/sct"

func newCode(code string, en string, de string, fr string, it string, rm string) Code {
	return Code{
		Coding: fhir.Coding{
			System:  to.Ptr(snomed),
			Code:    to.Ptr(code),
			Display: to.Ptr(en),
		},
		Displays: map[Language]string{
			LanguageEN: en,
			LanguageDE: de,
			LanguageFR: fr,
			LanguageIT: it,
			LanguageRM: rm,
		},
	}
}

// Find returns the code with the given SNOMED CT code, or nil.
func Find(set []Code, code string) *Code {
	for i := range set {
		if to.EmptyString(set[i].Coding.Code) == code {
			return &set[i]
		}
	}
	return nil
}

// Display returns the localized display string for a code, or "?" when the
// code or language is unknown.
func Display(set []Code, code string, language Language) string {
	found := Find(set, code)
	if found == nil {
		return "?"
	}
	display, ok := found.Displays[language]
	if !ok {
		return "?"
	}
	return display
}

// ClassCodeDisplay returns the localized display of a category code.
func ClassCodeDisplay(code string, language Language) string {
	return Display(ClassCodes, code, language)
}

// TypeCodeDisplay returns the localized display of a document type code.
func TypeCodeDisplay(code string, language Language) string {
	return Display(TypeCodes, code, language)
}

// FacilityClassCodeDisplay returns the localized display of a facility code.
func FacilityClassCodeDisplay(code string, language Language) string {
	return Display(FacilityClassCodes, code, language)
}

// PracticeSettingDisplay returns the localized display of a practice
// setting code.
func PracticeSettingDisplay(code string, language Language) string {
	return Display(PracticeSettingCodes, code, language)
}

// FindClassTypeCombination returns the document types that may be combined
// with the given category (class) code. An unknown class code yields an
// empty slice.
//
// http://ehealthsuisse.art-decor.org/ch-epr-html-20200226T180620/voc-2.16.756.5.30.1.127.3.10.1.30-2020-02-26T174502.html
func FindClassTypeCombination(classCode string) []Code {
	result := []Code{}
	for _, typeCode := range ClassTypeCombinations[classCode] {
		if code := Find(TypeCodes, typeCode); code != nil {
			result = append(result, *code)
		}
	}
	return result
}
