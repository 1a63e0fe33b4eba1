package formbuilder

import (
	"avalia-service/internal/app/models"
	"avalia-service/internal/app/services/core/fieldtypes"
	"avalia-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anamnesisSchema() *models.ModelSchema {
	return &models.ModelSchema{
		Model: models.AssessmentModel{ID: "m1", Name: "Anamnese Inicial"},
		Sections: []models.SchemaSection{
			{
				Section: models.AssessmentSection{ID: "s1", ModelID: "m1", Title: "Identificação", OrderIndex: 1},
				Fields: []models.AssessmentField{
					{ID: "f1", SectionID: "s1", Label: "Queixa principal", Type: "textarea", Required: true, OrderIndex: 1},
					{ID: "f2", SectionID: "s1", Label: "Peso (kg)", Type: "number", OrderIndex: 2},
				},
			},
			{
				Section: models.AssessmentSection{ID: "s2", ModelID: "m1", Title: "Sintomas", OrderIndex: 2},
				Fields: []models.AssessmentField{
					{ID: "f3", SectionID: "s2", Label: "Sintomas atuais", Type: "checkbox", Options: []string{"dor", "insônia"}, OrderIndex: 1},
				},
			},
		},
	}
}

func TestBuildPreservesSchemaOrder(t *testing.T) {
	contract, customErr := Build(anamnesisSchema())
	require.Nil(t, customErr)

	require.Len(t, contract.Rules, 3)
	assert.Equal(t, "f1", contract.Rules[0].FieldID)
	assert.Equal(t, "f2", contract.Rules[1].FieldID)
	assert.Equal(t, "f3", contract.Rules[2].FieldID)

	rule, ok := contract.Rule("f3")
	require.True(t, ok)
	assert.Equal(t, fieldtypes.FieldTypeCheckbox, rule.Type)
	assert.Equal(t, []string{"dor", "insônia"}, rule.Options)

	_, ok = contract.Rule("other")
	assert.False(t, ok)
}

func TestBuildRejectsUnknownFieldType(t *testing.T) {
	schema := anamnesisSchema()
	schema.Sections[0].Fields[0].Type = "signature"

	_, customErr := Build(schema)
	require.NotNil(t, customErr)
	assert.Equal(t, exceptions.KindValidation, customErr.Kind)
}

func TestDefaults(t *testing.T) {
	valueMap := Defaults(anamnesisSchema())

	require.Len(t, valueMap, 3)
	assert.Equal(t, "", valueMap["f1"].Text)
	assert.Equal(t, float64(0), valueMap["f2"].Number)
	assert.Equal(t, []string{}, valueMap["f3"].List)
}

func TestHydrate(t *testing.T) {
	schema := anamnesisSchema()
	results := []models.AssessmentResult{
		{AssessmentID: "a1", FieldID: "f1", Value: "cefaleia recorrente"},
		{AssessmentID: "a1", FieldID: "f3", Value: `["dor"]`},
	}

	valueMap, warnings := Hydrate(schema, results)

	assert.Empty(t, warnings)
	assert.Equal(t, "cefaleia recorrente", valueMap["f1"].Text)
	assert.Equal(t, []string{"dor"}, valueMap["f3"].List)
	assert.Equal(t, "", valueMap["f2"].Text, "unanswered fields keep their default")
}

func TestHydrateWarnsOnOrphanedResult(t *testing.T) {
	schema := anamnesisSchema()
	results := []models.AssessmentResult{
		{AssessmentID: "a1", FieldID: "deleted-field", Value: "x"},
	}

	valueMap, warnings := Hydrate(schema, results)

	require.Len(t, warnings, 1)
	assert.Equal(t, "deleted-field", warnings[0].FieldID)
	assert.Equal(t, exceptions.KindNotFound, warnings[0].Kind)
	assert.Len(t, valueMap, 3, "defaults still come back for every declared field")
}

func TestHydrateWarnsOnStaleValue(t *testing.T) {
	// The checkbox options were edited after this answer was stored.
	schema := anamnesisSchema()
	results := []models.AssessmentResult{
		{AssessmentID: "a1", FieldID: "f3", Value: `["fadiga"]`},
	}

	valueMap, warnings := Hydrate(schema, results)

	require.Len(t, warnings, 1)
	assert.Equal(t, "f3", warnings[0].FieldID)
	assert.Equal(t, exceptions.KindInvalidOption, warnings[0].Kind)
	assert.Equal(t, []string{}, valueMap["f3"].List, "a stale value falls back to the default, never aborts the read")
}
