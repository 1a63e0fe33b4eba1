package fieldtypes

import (
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, fieldType := range All() {
		parsed, ok := Parse(string(fieldType))
		assert.True(t, ok)
		assert.Equal(t, fieldType, parsed)
	}

	parsed, ok := Parse(" Checkbox ")
	assert.True(t, ok, "parse should trim and lower")
	assert.Equal(t, FieldTypeCheckbox, parsed)

	_, ok = Parse("signature")
	assert.False(t, ok, "unknown kinds are rejected")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		field    models.AssessmentField
		raw      Raw
		stored   string
		expected interface{}
	}{
		{
			name:     "text",
			field:    models.AssessmentField{ID: "f1", Type: "text"},
			raw:      RawString("queixa principal"),
			stored:   "queixa principal",
			expected: "queixa principal",
		},
		{
			name:     "number normalizes trailing zeroes",
			field:    models.AssessmentField{ID: "f2", Type: "number"},
			raw:      RawString("72.50"),
			stored:   "72.5",
			expected: 72.5,
		},
		{
			name:     "select",
			field:    models.AssessmentField{ID: "f3", Type: "select", Options: []string{"baixo", "médio", "alto"}},
			raw:      RawString("médio"),
			stored:   "médio",
			expected: "médio",
		},
		{
			name:     "checkbox stores a json array",
			field:    models.AssessmentField{ID: "f4", Type: "checkbox", Options: []string{"dor", "insônia", "fadiga"}},
			raw:      RawList([]string{"dor", "fadiga"}),
			stored:   `["dor","fadiga"]`,
			expected: []string{"dor", "fadiga"},
		},
		{
			name:     "date",
			field:    models.AssessmentField{ID: "f5", Type: "date"},
			raw:      RawString("2026-03-14"),
			stored:   "2026-03-14",
			expected: "2026-03-14",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, customErr := Encode(tc.field, tc.raw)
			require.Nil(t, customErr)
			assert.Equal(t, tc.stored, encoded)

			value, customErr := Decode(tc.field, encoded)
			require.Nil(t, customErr)
			assert.Equal(t, tc.expected, value.Display())
		})
	}
}

func TestEncodeCheckboxDeduplicates(t *testing.T) {
	field := models.AssessmentField{ID: "f1", Type: "checkbox", Options: []string{"a", "b"}}

	encoded, customErr := Encode(field, RawList([]string{"a", "b", "a"}))
	require.Nil(t, customErr)
	assert.Equal(t, `["a","b"]`, encoded)
}

func TestEncodeRejectsInvalidOption(t *testing.T) {
	field := models.AssessmentField{ID: "f1", Type: "radio", Options: []string{"sim", "não"}}

	_, customErr := Encode(field, RawString("talvez"))
	require.NotNil(t, customErr)
	assert.Equal(t, exceptions.KindInvalidOption, customErr.Kind)
	require.Len(t, customErr.Fields, 1)
	assert.Equal(t, "f1", customErr.Fields[0].FieldID)
}

func TestEncodeRejectsTypeMismatch(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "number"}
		_, customErr := Encode(field, RawString("setenta"))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindTypeMismatch, customErr.Kind)
	})

	t.Run("list into scalar field", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "text"}
		_, customErr := Encode(field, RawList([]string{"a"}))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindTypeMismatch, customErr.Kind)
	})

	t.Run("scalar into checkbox field", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "checkbox", Options: []string{"a"}}
		_, customErr := Encode(field, RawString("a"))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindTypeMismatch, customErr.Kind)
	})

	t.Run("malformed date", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "date"}
		_, customErr := Encode(field, RawString("14/03/2026"))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindTypeMismatch, customErr.Kind)
	})
}

func TestEncodeRequiredEmpty(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "text", Required: true}
		_, customErr := Encode(field, RawString("   "))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})

	t.Run("checkbox", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "checkbox", Required: true, Options: []string{"a"}}
		_, customErr := Encode(field, RawList(nil))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})

	t.Run("select", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "select", Required: true, Options: []string{"a"}}
		_, customErr := Encode(field, RawString(""))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})

	t.Run("number", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "number", Required: true}
		_, customErr := Encode(field, RawString(" "))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})

	t.Run("date", func(t *testing.T) {
		field := models.AssessmentField{ID: "f1", Type: "date", Required: true}
		_, customErr := Encode(field, RawString(""))
		require.NotNil(t, customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})
}

func TestDecodeAgainstEditedOptions(t *testing.T) {
	// The stored answer predates an options edit that removed its value.
	field := models.AssessmentField{ID: "f1", Type: "select", Options: []string{"novo"}}

	_, customErr := Decode(field, "antigo")
	require.NotNil(t, customErr)
	assert.Equal(t, exceptions.KindInvalidOption, customErr.Kind)
}

func TestDecodeCheckboxMalformedPayload(t *testing.T) {
	field := models.AssessmentField{ID: "f1", Type: "checkbox", Options: []string{"a"}}

	_, customErr := Decode(field, "not-json")
	require.NotNil(t, customErr)
	assert.Equal(t, exceptions.KindTypeMismatch, customErr.Kind)
}

func TestRawFromJSON(t *testing.T) {
	raw, ok := RawFromJSON("plain")
	require.True(t, ok)
	assert.False(t, raw.IsList)
	assert.Equal(t, "plain", raw.Scalar)

	raw, ok = RawFromJSON([]interface{}{"a", "b"})
	require.True(t, ok)
	assert.True(t, raw.IsList)
	assert.Equal(t, []string{"a", "b"}, raw.List)

	_, ok = RawFromJSON(42.0)
	assert.False(t, ok, "numbers must be submitted as strings")

	_, ok = RawFromJSON([]interface{}{"a", 1.0})
	assert.False(t, ok, "mixed arrays are rejected")
}

func TestValidateOptions(t *testing.T) {
	assert.Nil(t, ValidateOptions(FieldTypeSelect, []string{"a", "b"}))
	assert.Nil(t, ValidateOptions(FieldTypeText, nil))

	customErr := ValidateOptions(FieldTypeRadio, nil)
	require.NotNil(t, customErr)
	assert.Equal(t, exceptions.KindValidation, customErr.Kind)

	customErr = ValidateOptions(FieldTypeCheckbox, []string{"a", "a"})
	require.NotNil(t, customErr, "duplicate options are rejected")

	customErr = ValidateOptions(FieldTypeNumber, []string{"a"})
	require.NotNil(t, customErr, "options on a non-choice field are rejected")
}

func TestDefault(t *testing.T) {
	assert.Equal(t, []string{}, Default(FieldTypeCheckbox).List)
	assert.Equal(t, "", Default(FieldTypeText).Text)
}
