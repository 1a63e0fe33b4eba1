package constvars

// Validation messages mapper, keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"oneof":      "must be one of [%s]",
	"numeric":    "must be a number",
	"datetime":   "must be a valid date",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientResourceNotFound              = "the requested resource was not found"
	ErrClientInvalidFieldValues            = "one or more answers are invalid"
	ErrClientInvalidStatusChange           = "this status change is not allowed"
	ErrClientStoreUnavailable              = "the data store is temporarily unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "invalid or missing url param: %s"
	ErrDevInvalidAPIKey         = "invalid api key"

	ErrDevModelNotFound      = "assessment model not found"
	ErrDevSectionNotFound    = "assessment section not found"
	ErrDevFieldNotFound      = "assessment field not found"
	ErrDevPatientNotFound    = "patient not found"
	ErrDevAssessmentNotFound = "assessment not found"

	ErrDevFieldTypeUnknown       = "unknown field type: %s"
	ErrDevOptionsRequired        = "choice fields require a non-empty options list"
	ErrDevOptionsNotAllowed      = "options are only allowed on choice fields"
	ErrDevValueRequired          = "a value is required for this field"
	ErrDevValueTypeMismatch      = "value does not satisfy the field type"
	ErrDevValueInvalidOption     = "value is not one of the field options"
	ErrDevCrossModelReference    = "field belongs to a different assessment model"
	ErrDevInvalidStatusTransition = "illegal assessment status transition: %s -> %s"
	ErrDevUnknownStatus          = "unknown assessment status: %s"
	ErrDevBatchValidationFailed  = "one or more submitted values failed validation"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"
	ErrDevDBFailedToAllocateIndex    = "failed to allocate next order index"
	ErrDevDBFailedToBulkWrite        = "failed to bulk write documents"

	// Redis
	ErrDevRedisSet    = "failed to set redis key"
	ErrDevRedisGet    = "failed to get redis key"
	ErrDevRedisDelete = "failed to delete redis key"

	// Messaging
	ErrDevQueuePublish = "failed to publish message to queue"
)
