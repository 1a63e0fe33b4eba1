package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingModelIDKey      = "model_id"
	LoggingSectionIDKey    = "section_id"
	LoggingFieldIDKey      = "field_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingAssessmentIDKey = "assessment_id"
	LoggingValueCountKey   = "value_count"
	LoggingWarningCountKey = "warning_count"
)
