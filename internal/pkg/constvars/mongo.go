package constvars

const (
	MongoCollectionPatients           = "patients"
	MongoCollectionAssessmentModels   = "assessment_models"
	MongoCollectionAssessmentSections = "assessment_sections"
	MongoCollectionAssessmentFields   = "assessment_fields"
	MongoCollectionAssessments        = "assessments"
	MongoCollectionAssessmentResults  = "assessment_results"
	MongoCollectionCounters           = "counters"
)
