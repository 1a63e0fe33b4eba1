package models

// AssessmentModel is a reusable template of sections and fields an
// administrator authors once and clinicians instantiate per patient.
type AssessmentModel struct {
	ID          string `bson:"_id,omitempty"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
	TimeModel   `bson:",inline"`
}

type AssessmentSection struct {
	ID          string `bson:"_id,omitempty"`
	ModelID     string `bson:"modelId"`
	Title       string `bson:"title"`
	Description string `bson:"description,omitempty"`
	OrderIndex  int    `bson:"orderIndex"`
	TimeModel   `bson:",inline"`
}

// AssessmentField holds Options only for choice types (select, radio,
// checkbox); nil otherwise. The invariant is enforced at creation and update.
type AssessmentField struct {
	ID         string   `bson:"_id,omitempty"`
	SectionID  string   `bson:"sectionId"`
	Label      string   `bson:"label"`
	Type       string   `bson:"type"`
	Required   bool     `bson:"required"`
	Options    []string `bson:"options,omitempty"`
	OrderIndex int      `bson:"orderIndex"`
	TimeModel  `bson:",inline"`
}

// ModelSchema is the fully loaded aggregate, sections and fields sorted
// ascending by orderIndex. This ordering is what keeps a rendered form and a
// previously submitted result set visually aligned for a reviewer.
type ModelSchema struct {
	Model    AssessmentModel `json:"model"`
	Sections []SchemaSection `json:"sections"`
}

type SchemaSection struct {
	Section AssessmentSection `json:"section"`
	Fields  []AssessmentField `json:"fields"`
}

// FieldByID scans the aggregate for one field. The boolean is false when the
// id does not belong to this model's schema.
func (s *ModelSchema) FieldByID(fieldID string) (AssessmentField, bool) {
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if field.ID == fieldID {
				return field, true
			}
		}
	}
	return AssessmentField{}, false
}
