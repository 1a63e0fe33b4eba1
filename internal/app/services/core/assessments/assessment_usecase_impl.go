package assessments

import (
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/app/services/core/fieldtypes"
	"avalia-service/internal/app/services/core/formbuilder"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/exceptions"
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	AssessmentRepository  contracts.AssessmentRepository
	ModelSchemaUsecase    contracts.ModelSchemaUsecase
	ModelSchemaRepository contracts.ModelSchemaRepository
	PatientRepository     contracts.PatientRepository
	NotificationQueue     contracts.NotificationQueueService
	Log                   *zap.Logger
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	assessmentRepository contracts.AssessmentRepository,
	modelSchemaUsecase contracts.ModelSchemaUsecase,
	modelSchemaRepository contracts.ModelSchemaRepository,
	patientRepository contracts.PatientRepository,
	notificationQueue contracts.NotificationQueueService,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			AssessmentRepository:  assessmentRepository,
			ModelSchemaUsecase:    modelSchemaUsecase,
			ModelSchemaRepository: modelSchemaRepository,
			PatientRepository:     patientRepository,
			NotificationQueue:     notificationQueue,
			Log:                   logger,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	schema, err := uc.ModelSchemaUsecase.LoadSchema(ctx, request.ModelID)
	if err != nil {
		return nil, err
	}

	// Values handed in at creation are validated in full before the
	// instance exists; a rejected batch leaves nothing behind.
	var results []models.AssessmentResult
	if len(request.Values) > 0 {
		results, err = uc.encodeBatch(ctx, schema, map[string]bool{}, request.Values)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	assessment := &models.Assessment{
		ModelID:   request.ModelID,
		PatientID: request.PatientID,
		Title:     request.Title,
		Date:      request.Date,
		Status:    models.AssessmentStatusScheduled,
		Notes:     request.Notes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	assessmentID, err := uc.AssessmentRepository.CreateAssessment(ctx, assessment)
	if err != nil {
		return nil, err
	}
	assessment.ID = assessmentID

	if len(request.Values) > 0 {
		err = uc.writeResults(ctx, assessment, results)
		if err != nil {
			return nil, err
		}
	}

	uc.Log.Info("assessment created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingModelIDKey, request.ModelID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)
	uc.publishEvent(ctx, contracts.AssessmentEventCreated, assessment)

	response := convertAssessmentIntoResponse(assessment)
	return &response, nil
}

func (uc *assessmentUsecase) FindAssessmentByID(ctx context.Context, assessmentID string) (*responses.Assessment, error) {
	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotFound(nil)
	}
	response := convertAssessmentIntoResponse(assessment)
	return &response, nil
}

func (uc *assessmentUsecase) FindAllAssessments(ctx context.Context, request *requests.ListAssessments) ([]responses.Assessment, int, error) {
	request.Normalize()

	var status models.AssessmentStatus
	if request.Status != "" {
		parsed, ok := models.ParseAssessmentStatus(request.Status)
		if !ok {
			return nil, 0, exceptions.ErrUnknownStatus(request.Status)
		}
		status = parsed
	}

	assessments, total, err := uc.AssessmentRepository.FindAllAssessments(ctx, request.PatientID, status, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Assessment, len(assessments))
	for i, assessment := range assessments {
		response[i] = convertAssessmentIntoResponse(&assessment)
	}
	return response, total, nil
}

func (uc *assessmentUsecase) UpdateAssessment(ctx context.Context, assessmentID string, request *requests.UpdateAssessment) error {
	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return err
	}
	if assessment == nil {
		return exceptions.ErrAssessmentNotFound(nil)
	}

	assessment.Title = request.Title
	assessment.Date = request.Date
	assessment.Notes = request.Notes
	assessment.UpdatedAt = time.Now()

	return uc.AssessmentRepository.UpdateAssessment(ctx, assessment)
}

// UpdateStatus enforces the status graph: scheduled to in_progress to
// completed, cancellation from any non-terminal state, terminal states
// frozen.
func (uc *assessmentUsecase) UpdateStatus(ctx context.Context, assessmentID string, status string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	next, ok := models.ParseAssessmentStatus(status)
	if !ok {
		return nil, exceptions.ErrUnknownStatus(status)
	}

	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotFound(nil)
	}

	if !assessment.Status.CanTransitionTo(next) {
		return nil, exceptions.ErrInvalidStatusTransition(string(assessment.Status), string(next))
	}

	assessment.Status = next
	assessment.UpdatedAt = time.Now()
	err = uc.AssessmentRepository.UpdateAssessment(ctx, assessment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("assessment status updated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String("status", string(next)),
	)

	switch next {
	case models.AssessmentStatusCompleted:
		uc.publishEvent(ctx, contracts.AssessmentEventCompleted, assessment)
	case models.AssessmentStatusCancelled:
		uc.publishEvent(ctx, contracts.AssessmentEventCancelled, assessment)
	}

	response := convertAssessmentIntoResponse(assessment)
	return &response, nil
}

// SubmitValues validates the whole batch against the model schema before
// writing anything; a single bad answer rejects the batch.
func (uc *assessmentUsecase) SubmitValues(ctx context.Context, assessmentID string, values map[string]interface{}) error {
	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return err
	}
	if assessment == nil {
		return exceptions.ErrAssessmentNotFound(nil)
	}

	if assessment.Status.IsTerminal() {
		return exceptions.ErrInvalidStatusTransition(string(assessment.Status), string(models.AssessmentStatusInProgress))
	}

	schema, err := uc.ModelSchemaUsecase.LoadSchema(ctx, assessment.ModelID)
	if err != nil {
		return err
	}

	stored, err := uc.AssessmentRepository.FindResultsByAssessmentID(ctx, assessment.ID)
	if err != nil {
		return err
	}
	storedFieldIDs := make(map[string]bool, len(stored))
	for _, result := range stored {
		storedFieldIDs[result.FieldID] = true
	}

	results, err := uc.encodeBatch(ctx, schema, storedFieldIDs, values)
	if err != nil {
		return err
	}
	return uc.writeResults(ctx, assessment, results)
}

// encodeBatch validates one whole submission against the schema and returns
// the encoded rows, not yet bound to an assessment. Nothing is written here;
// a single bad answer rejects the batch.
func (uc *assessmentUsecase) encodeBatch(ctx context.Context, schema *models.ModelSchema, storedFieldIDs map[string]bool, values map[string]interface{}) ([]models.AssessmentResult, error) {
	contract, customErr := formbuilder.Build(schema)
	if customErr != nil {
		return nil, customErr
	}

	now := time.Now()
	var fieldErrors []exceptions.FieldError
	var results []models.AssessmentResult

	// Walk the contract in schema order so errors and writes come out
	// deterministic regardless of map iteration.
	for _, rule := range contract.Rules {
		rawValue, present := values[rule.FieldID]
		if !present {
			if rule.Required && !storedFieldIDs[rule.FieldID] {
				fieldErrors = append(fieldErrors, exceptions.FieldError{
					FieldID: rule.FieldID,
					Kind:    exceptions.KindValidation,
					Message: constvars.ErrDevValueRequired,
				})
			}
			continue
		}

		raw, ok := fieldtypes.RawFromJSON(rawValue)
		if !ok {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				FieldID: rule.FieldID,
				Kind:    exceptions.KindTypeMismatch,
				Message: constvars.ErrDevValueTypeMismatch,
			})
			continue
		}

		// Empty optional answers are skipped entirely, never stored.
		if raw.IsEmpty() && !rule.Required {
			continue
		}

		field, _ := schema.FieldByID(rule.FieldID)
		encoded, encodeErr := fieldtypes.Encode(field, raw)
		if encodeErr != nil {
			fieldErrors = append(fieldErrors, encodeErr.Fields...)
			continue
		}

		results = append(results, models.AssessmentResult{
			FieldID: rule.FieldID,
			Value:   encoded,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		})
	}

	// Keys outside the contract: a real field of another model is a
	// cross-model reference, anything else is unknown.
	unknownIDs := make([]string, 0)
	for fieldID := range values {
		if _, ok := contract.Rule(fieldID); !ok {
			unknownIDs = append(unknownIDs, fieldID)
		}
	}
	sort.Strings(unknownIDs)
	for _, fieldID := range unknownIDs {
		field, err := uc.ModelSchemaRepository.FindFieldByID(ctx, fieldID)
		if err != nil || field == nil {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				FieldID: fieldID,
				Kind:    exceptions.KindNotFound,
				Message: constvars.ErrDevFieldNotFound,
			})
			continue
		}
		fieldErrors = append(fieldErrors, exceptions.FieldError{
			FieldID: fieldID,
			Kind:    exceptions.KindCrossModelReference,
			Message: constvars.ErrDevCrossModelReference,
		})
	}

	if len(fieldErrors) > 0 {
		return nil, exceptions.ErrBatchValidation(fieldErrors)
	}
	return results, nil
}

// writeResults persists an accepted batch and moves a scheduled assessment
// to in_progress on its first answers.
func (uc *assessmentUsecase) writeResults(ctx context.Context, assessment *models.Assessment, results []models.AssessmentResult) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	for i := range results {
		results[i].AssessmentID = assessment.ID
	}
	err := uc.AssessmentRepository.UpsertResults(ctx, results)
	if err != nil {
		return err
	}

	if assessment.Status == models.AssessmentStatusScheduled {
		assessment.Status = models.AssessmentStatusInProgress
		assessment.UpdatedAt = time.Now()
		err = uc.AssessmentRepository.UpdateAssessment(ctx, assessment)
		if err != nil {
			return err
		}
	}

	uc.Log.Info("assessment values saved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
		zap.Int(constvars.LoggingValueCountKey, len(results)),
	)
	return nil
}

// GetValues hydrates the stored results through the current schema. Stored
// answers that no longer decode cleanly come back as warnings, never as a
// failed read.
func (uc *assessmentUsecase) GetValues(ctx context.Context, assessmentID string) (*responses.AssessmentValues, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotFound(nil)
	}

	schema, err := uc.ModelSchemaUsecase.LoadSchema(ctx, assessment.ModelID)
	if err != nil {
		return nil, err
	}

	results, err := uc.AssessmentRepository.FindResultsByAssessmentID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	valueMap, warnings := formbuilder.Hydrate(schema, results)

	response := &responses.AssessmentValues{
		AssessmentID: assessmentID,
		Values:       make(map[string]interface{}, len(valueMap)),
	}
	for fieldID, value := range valueMap {
		response.Values[fieldID] = value.Display()
	}
	for _, warning := range warnings {
		response.Warnings = append(response.Warnings, responses.ValueWarning{
			FieldID: warning.FieldID,
			Kind:    string(warning.Kind),
			Message: warning.Message,
		})
	}

	if len(warnings) > 0 {
		uc.Log.Warn("assessment values hydrated with warnings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Int(constvars.LoggingWarningCountKey, len(warnings)),
		)
	}
	return response, nil
}

func (uc *assessmentUsecase) DeleteAssessmentByID(ctx context.Context, assessmentID string) error {
	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return err
	}
	if assessment == nil {
		return exceptions.ErrAssessmentNotFound(nil)
	}
	return uc.AssessmentRepository.DeleteAssessmentByID(ctx, assessmentID)
}

// publishEvent never fails the calling flow; a broker outage is logged and
// the write that triggered the event stands.
func (uc *assessmentUsecase) publishEvent(ctx context.Context, eventType string, assessment *models.Assessment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := &contracts.AssessmentEvent{
		Type:         eventType,
		AssessmentID: assessment.ID,
		ModelID:      assessment.ModelID,
		PatientID:    assessment.PatientID,
		Status:       string(assessment.Status),
		OccurredAt:   time.Now(),
	}
	err := uc.NotificationQueue.PublishAssessmentEvent(ctx, event)
	if err != nil {
		uc.Log.Error("failed to publish assessment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func convertAssessmentIntoResponse(assessment *models.Assessment) responses.Assessment {
	return responses.Assessment{
		ID:          assessment.ID,
		ModelID:     assessment.ModelID,
		PatientID:   assessment.PatientID,
		Title:       assessment.Title,
		Date:        assessment.Date,
		Status:      string(assessment.Status),
		StatusLabel: constvars.StatusLabelsPortuguese[string(assessment.Status)],
		Notes:       assessment.Notes,
		CreatedAt:   assessment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   assessment.UpdatedAt.Format(time.RFC3339),
	}
}
