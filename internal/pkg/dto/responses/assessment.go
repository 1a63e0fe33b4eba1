package responses

type Assessment struct {
	ID          string `json:"id"`
	ModelID     string `json:"model_id"`
	PatientID   string `json:"patient_id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ValueWarning struct {
	FieldID string `json:"field_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type AssessmentValues struct {
	AssessmentID string                 `json:"assessment_id"`
	Values       map[string]interface{} `json:"values"`
	Warnings     []ValueWarning         `json:"warnings,omitempty"`
}
