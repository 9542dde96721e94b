package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func TestSet(t *testing.T) {
	t.Run("nil meta", func(t *testing.T) {
		meta := Set(nil, CHAllergyIntolerance)
		assert.Equal(t, []string{CHAllergyIntolerance}, meta.Profile)
	})
	t.Run("appends to existing profiles", func(t *testing.T) {
		meta := Set(&fhir.Meta{Profile: []string{MHDProvideBundle}}, CHAllergyIntolerance)
		assert.Equal(t, []string{MHDProvideBundle, CHAllergyIntolerance}, meta.Profile)
	})
	t.Run("idempotent", func(t *testing.T) {
		meta := Set(nil, CHAllergyIntolerance)
		meta = Set(meta, CHAllergyIntolerance)
		assert.Equal(t, []string{CHAllergyIntolerance}, meta.Profile)
	})
}
