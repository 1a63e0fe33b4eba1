package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient messages
	PatientCreatedSuccess = "patient created successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientDeletedSuccess = "patient deleted successfully"
	PatientGetSuccess     = "get patient successfully"
	PatientListSuccess    = "get patients successfully"

	// Assessment model messages
	ModelCreatedSuccess   = "assessment model created successfully"
	ModelUpdatedSuccess   = "assessment model updated successfully"
	ModelDeletedSuccess   = "assessment model deleted successfully"
	ModelGetSuccess       = "get assessment model successfully"
	ModelListSuccess      = "get assessment models successfully"
	SectionCreatedSuccess = "section created successfully"
	SectionUpdatedSuccess = "section updated successfully"
	SectionDeletedSuccess = "section deleted successfully"
	FieldCreatedSuccess   = "field created successfully"
	FieldUpdatedSuccess   = "field updated successfully"
	FieldDeletedSuccess   = "field deleted successfully"

	// Assessment messages
	AssessmentCreatedSuccess      = "assessment created successfully"
	AssessmentUpdatedSuccess      = "assessment updated successfully"
	AssessmentDeletedSuccess      = "assessment deleted successfully"
	AssessmentGetSuccess          = "get assessment successfully"
	AssessmentListSuccess         = "get assessments successfully"
	AssessmentValuesSavedSuccess  = "assessment values saved successfully"
	AssessmentValuesGetSuccess    = "get assessment values successfully"
	AssessmentStatusUpdateSuccess = "assessment status updated successfully"
)
