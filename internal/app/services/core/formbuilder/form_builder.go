package formbuilder

import (
	"avalia-service/internal/app/models"
	"avalia-service/internal/app/services/core/fieldtypes"
	"avalia-service/internal/pkg/exceptions"
)

// FieldRule is the validation contract derived from one field's declaration.
type FieldRule struct {
	FieldID  string               `json:"field_id"`
	Label    string               `json:"label"`
	Type     fieldtypes.FieldType `json:"type"`
	Required bool                 `json:"required"`
	Options  []string             `json:"options,omitempty"`
}

// Contract is the full validation contract for one model schema, rules in
// schema order (sections then fields by orderIndex).
type Contract struct {
	Rules []FieldRule
	byID  map[string]FieldRule
}

// Rule looks a rule up by field id; the boolean is false when the field does
// not belong to the contract's model.
func (c *Contract) Rule(fieldID string) (FieldRule, bool) {
	rule, ok := c.byID[fieldID]
	return rule, ok
}

// Build derives the validation contract from a loaded schema. Pure; fails
// only when the schema carries a field type outside the registry.
func Build(schema *models.ModelSchema) (*Contract, *exceptions.CustomError) {
	contract := &Contract{byID: make(map[string]FieldRule)}
	for _, section := range schema.Sections {
		for _, field := range section.Fields {
			fieldType, ok := fieldtypes.Parse(field.Type)
			if !ok {
				return nil, exceptions.ErrFieldTypeUnknown(field.Type)
			}
			rule := FieldRule{
				FieldID:  field.ID,
				Label:    field.Label,
				Type:     fieldType,
				Required: field.Required,
				Options:  field.Options,
			}
			contract.Rules = append(contract.Rules, rule)
			contract.byID[field.ID] = rule
		}
	}
	return contract, nil
}

// Defaults produces the initial value map for a blank instance of the schema:
// empty string per scalar field, empty list per checkbox field.
func Defaults(schema *models.ModelSchema) map[string]fieldtypes.Value {
	valueMap := make(map[string]fieldtypes.Value)
	for _, section := range schema.Sections {
		for _, field := range section.Fields {
			fieldType, ok := fieldtypes.Parse(field.Type)
			if !ok {
				continue
			}
			valueMap[field.ID] = fieldtypes.Default(fieldType)
		}
	}
	return valueMap
}

// DecodeWarning flags one stored value that no longer decodes cleanly against
// its field's current declaration.
type DecodeWarning struct {
	FieldID string          `json:"field_id"`
	Kind    exceptions.Kind `json:"kind"`
	Message string          `json:"message"`
}

// Hydrate fills the default value map with previously stored results, decoded
// through the registry. A result that fails to decode (for example its
// field's options were edited after submission) becomes a warning for that
// entry; the read never aborts. Historical answers are kept as stored, only
// flagged.
func Hydrate(schema *models.ModelSchema, results []models.AssessmentResult) (map[string]fieldtypes.Value, []DecodeWarning) {
	valueMap := Defaults(schema)
	var warnings []DecodeWarning

	for _, result := range results {
		field, ok := schema.FieldByID(result.FieldID)
		if !ok {
			warnings = append(warnings, DecodeWarning{
				FieldID: result.FieldID,
				Kind:    exceptions.KindNotFound,
				Message: "stored value references a field no longer in the model",
			})
			continue
		}
		value, decodeErr := fieldtypes.Decode(field, result.Value)
		if decodeErr != nil {
			warnings = append(warnings, DecodeWarning{
				FieldID: result.FieldID,
				Kind:    decodeErr.Kind,
				Message: decodeErr.DevMessage,
			})
			continue
		}
		valueMap[result.FieldID] = value
	}
	return valueMap, warnings
}
