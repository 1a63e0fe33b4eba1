package responses

type AssessmentModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type AssessmentSection struct {
	ID          string `json:"id"`
	ModelID     string `json:"model_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	OrderIndex  int    `json:"order_index"`
}

type AssessmentField struct {
	ID         string   `json:"id"`
	SectionID  string   `json:"section_id"`
	Label      string   `json:"label"`
	Type       string   `json:"type"`
	Required   bool     `json:"required"`
	Options    []string `json:"options,omitempty"`
	OrderIndex int      `json:"order_index"`
}

type SchemaSection struct {
	AssessmentSection
	Fields []AssessmentField `json:"fields"`
}

type ModelSchema struct {
	AssessmentModel
	Sections []SchemaSection `json:"sections"`
}
