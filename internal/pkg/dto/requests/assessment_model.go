package requests

type CreateAssessmentModel struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateAssessmentModel struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type ListAssessmentModels struct {
	Pagination
}

type CreateSection struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateSection struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type CreateField struct {
	Label    string   `json:"label" validate:"required,min=1,max=255"`
	Type     string   `json:"type" validate:"required,oneof=text textarea number select radio checkbox date"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

type UpdateField struct {
	Label    string   `json:"label" validate:"required,min=1,max=255"`
	Type     string   `json:"type" validate:"required,oneof=text textarea number select radio checkbox date"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}
