package codes

import (
	"testing"

	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	code := Find(ClassCodes, "371531000")
	require.NotNil(t, code)
	assert.Equal(t, "Report of clinical encounter", *code.Coding.Display)
	assert.Equal(t, "http://snomed.info/sct", *code.Coding.System)

	assert.Nil(t, Find(ClassCodes, "000000000"))
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name     string
		set      []Code
		code     string
		language Language
		expected string
	}{
		{"class code german", ClassCodes, "371531000", LanguageDE, "Bericht aufgrund einer Konsultation"},
		{"class code romansh", ClassCodes, "734163000", LanguageRM, "Plan da tractament"},
		{"type code french", TypeCodes, "722446000", LanguageFR, "Carnet des allergies"},
		{"facility code italian", FacilityClassCodes, "264372000", LanguageIT, "Farmacia"},
		{"practice setting english", PracticeSettingCodes, "394805004", LanguageEN, "Clinical immunology/allergy"},
		{"unknown code", ClassCodes, "000000000", LanguageEN, "?"},
		{"unknown language", ClassCodes, "371531000", Language("xx"), "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Display(tt.set, tt.code, tt.language))
		})
	}
}

func TestDisplayWrappers(t *testing.T) {
	assert.Equal(t, "Zuweisungsschreiben", ClassCodeDisplay("721927009", LanguageDE))
	assert.Equal(t, "Allergy record", TypeCodeDisplay("722446000", LanguageEN))
	assert.Equal(t, "Hôpital", FacilityClassCodeDisplay("22232009", LanguageFR))
	assert.Equal(t, "Medicina generale", PracticeSettingDisplay("394802001", LanguageIT))
}

func TestFindClassTypeCombination(t *testing.T) {
	t.Run("report of clinical encounter", func(t *testing.T) {
		types := FindClassTypeCombination("371531000")
		require.Len(t, types, 4)
		codeSet := map[string]bool{}
		for _, code := range types {
			codeSet[to.EmptyString(code.Coding.Code)] = true
		}
		assert.True(t, codeSet["371530004"])
		assert.True(t, codeSet["371529009"])
		assert.True(t, codeSet["371532007"])
		assert.True(t, codeSet["419891008"])
	})
	t.Run("unspecified document only combines with itself", func(t *testing.T) {
		types := FindClassTypeCombination("419891008")
		require.Len(t, types, 1)
		assert.Equal(t, "419891008", *types[0].Coding.Code)
	})
	t.Run("unknown class code", func(t *testing.T) {
		types := FindClassTypeCombination("000000000")
		require.NotNil(t, types)
		assert.Empty(t, types)
	})
}

func TestEveryCombinationTargetExists(t *testing.T) {
	for classCode, typeCodes := range ClassTypeCombinations {
		require.NotNil(t, Find(ClassCodes, classCode), "class code %s", classCode)
		for _, typeCode := range typeCodes {
			require.NotNil(t, Find(TypeCodes, typeCode), "type code %s for class %s", typeCode, classCode)
		}
	}
}
