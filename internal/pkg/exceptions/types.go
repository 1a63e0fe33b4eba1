package exceptions

import (
	"avalia-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
)

// wrapStoreError classifies a failed store call. A call that died because the
// request deadline expired surfaces as the timeout kind, not as a store
// outage.
func wrapStoreError(err error, clientMessage, devMessage string) *CustomError {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrServerDeadlineExceeded(err)
	}
	return BuildNewCustomError(err, constvars.StatusInternalServerError, KindStoreUnavailable, clientMessage, devMessage)
}

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, KindTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidAPIKey)
	}

	// Not found
	ErrModelNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevModelNotFound)
	}
	ErrSectionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevSectionNotFound)
	}
	ErrFieldNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevFieldNotFound)
	}
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevPatientNotFound)
	}
	ErrAssessmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevAssessmentNotFound)
	}

	// Form engine
	ErrFieldTypeUnknown = func(fieldType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevFieldTypeUnknown, fieldType))
	}
	ErrOptionsRequired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevOptionsRequired)
	}
	ErrOptionsNotAllowed = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevOptionsNotAllowed)
	}
	ErrValueRequired = func(fieldID string) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, KindValidation, constvars.ErrClientInvalidFieldValues, constvars.ErrDevValueRequired)
		customErr.Fields = []FieldError{{FieldID: fieldID, Kind: KindValidation, Message: constvars.ErrDevValueRequired}}
		return customErr
	}
	ErrValueTypeMismatch = func(fieldID string) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, KindTypeMismatch, constvars.ErrClientInvalidFieldValues, constvars.ErrDevValueTypeMismatch)
		customErr.Fields = []FieldError{{FieldID: fieldID, Kind: KindTypeMismatch, Message: constvars.ErrDevValueTypeMismatch}}
		return customErr
	}
	ErrValueInvalidOption = func(fieldID string) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, KindInvalidOption, constvars.ErrClientInvalidFieldValues, constvars.ErrDevValueInvalidOption)
		customErr.Fields = []FieldError{{FieldID: fieldID, Kind: KindInvalidOption, Message: constvars.ErrDevValueInvalidOption}}
		return customErr
	}
	ErrCrossModelReference = func(fieldID string) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, KindCrossModelReference, constvars.ErrClientInvalidFieldValues, constvars.ErrDevCrossModelReference)
		customErr.Fields = []FieldError{{FieldID: fieldID, Kind: KindCrossModelReference, Message: constvars.ErrDevCrossModelReference}}
		return customErr
	}
	ErrBatchValidation = func(fields []FieldError) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, KindValidation, constvars.ErrClientInvalidFieldValues, constvars.ErrDevBatchValidationFailed)
		customErr.Fields = fields
		return customErr
	}
	ErrUnknownStatus = func(raw string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownStatus, raw))
	}
	ErrInvalidStatusTransition = func(from, to string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, KindInvalidTransition, constvars.ErrClientInvalidStatusChange, fmt.Sprintf(constvars.ErrDevInvalidStatusTransition, from, to))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}
	ErrMongoDBAllocateIndex = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToAllocateIndex)
	}
	ErrMongoDBBulkWrite = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientStoreUnavailable, constvars.ErrDevDBFailedToBulkWrite)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return wrapStoreError(err, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// Messaging
	ErrQueuePublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevQueuePublish)
	}
)
