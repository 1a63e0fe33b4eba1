package constvars

const (
	URLParamModelID      = "model_id"
	URLParamSectionID    = "section_id"
	URLParamFieldID      = "field_id"
	URLParamPatientID    = "patient_id"
	URLParamAssessmentID = "assessment_id"
)

const (
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamPatientID = "patient_id"
	URLQueryParamStatus    = "status"
)
