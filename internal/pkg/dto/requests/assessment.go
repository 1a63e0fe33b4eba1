package requests

type CreateAssessment struct {
	ModelID   string                 `json:"model_id" validate:"required"`
	PatientID string                 `json:"patient_id" validate:"required"`
	Title     string                 `json:"title" validate:"required,min=1,max=255"`
	Date      string                 `json:"date" validate:"required,datetime=2006-01-02"`
	Notes     string                 `json:"notes" validate:"max=4000"`
	Values    map[string]interface{} `json:"values"`
}

type UpdateAssessment struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes string `json:"notes" validate:"max=4000"`
}

type UpdateAssessmentStatus struct {
	Status string `json:"status" validate:"required"`
}

type SubmitValues struct {
	Values map[string]interface{} `json:"values" validate:"required"`
}

type ListAssessments struct {
	Pagination
	PatientID string `json:"patient_id"`
	Status    string `json:"status"`
}
