package assessmentModels

import (
	"avalia-service/internal/app/config"
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type assessmentModelUsecase struct {
	ModelSchemaRepository contracts.ModelSchemaRepository
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	assessmentModelUsecaseInstance contracts.ModelSchemaUsecase
	onceAssessmentModelUsecase     sync.Once
)

func NewAssessmentModelUsecase(
	modelSchemaRepository contracts.ModelSchemaRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ModelSchemaUsecase {
	onceAssessmentModelUsecase.Do(func() {
		assessmentModelUsecaseInstance = &assessmentModelUsecase{
			ModelSchemaRepository: modelSchemaRepository,
			RedisRepository:       redisRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return assessmentModelUsecaseInstance
}

func (uc *assessmentModelUsecase) CreateModel(ctx context.Context, request *requests.CreateAssessmentModel) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	now := time.Now()
	model := &models.AssessmentModel{
		Name:        request.Name,
		Description: request.Description,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	modelID, err := uc.ModelSchemaRepository.CreateModel(ctx, model)
	if err != nil {
		return "", err
	}

	uc.Log.Info("assessment model created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelIDKey, modelID),
	)
	return modelID, nil
}

func (uc *assessmentModelUsecase) FindAllModels(ctx context.Context, request *requests.ListAssessmentModels) ([]responses.AssessmentModel, int, error) {
	request.Normalize()

	assessmentModels, total, err := uc.ModelSchemaRepository.FindAllModels(ctx, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.AssessmentModel, len(assessmentModels))
	for i, model := range assessmentModels {
		response[i] = convertModelIntoResponse(&model)
	}
	return response, total, nil
}

func (uc *assessmentModelUsecase) FindModelWithSchema(ctx context.Context, modelID string) (*responses.ModelSchema, error) {
	schema, err := uc.LoadSchema(ctx, modelID)
	if err != nil {
		return nil, err
	}

	response := &responses.ModelSchema{
		AssessmentModel: convertModelIntoResponse(&schema.Model),
		Sections:        make([]responses.SchemaSection, len(schema.Sections)),
	}
	for i, schemaSection := range schema.Sections {
		section := responses.SchemaSection{
			AssessmentSection: convertSectionIntoResponse(&schemaSection.Section),
			Fields:            make([]responses.AssessmentField, len(schemaSection.Fields)),
		}
		for j, field := range schemaSection.Fields {
			section.Fields[j] = convertFieldIntoResponse(&field)
		}
		response.Sections[i] = section
	}
	return response, nil
}

func (uc *assessmentModelUsecase) UpdateModel(ctx context.Context, modelID string, request *requests.UpdateAssessmentModel) error {
	model, err := uc.ModelSchemaRepository.FindModelByID(ctx, modelID)
	if err != nil {
		return err
	}
	if model == nil {
		return exceptions.ErrModelNotFound(nil)
	}

	model.Name = request.Name
	model.Description = request.Description
	model.UpdatedAt = time.Now()

	err = uc.ModelSchemaRepository.UpdateModel(ctx, model)
	if err != nil {
		return err
	}
	return uc.invalidateSchemaCache(ctx, modelID)
}

func (uc *assessmentModelUsecase) DeleteModelByID(ctx context.Context, modelID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	model, err := uc.ModelSchemaRepository.FindModelByID(ctx, modelID)
	if err != nil {
		return err
	}
	if model == nil {
		return exceptions.ErrModelNotFound(nil)
	}

	err = uc.ModelSchemaRepository.DeleteModelByID(ctx, modelID)
	if err != nil {
		return err
	}

	uc.Log.Info("assessment model deleted with sections, fields and assessments",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelIDKey, modelID),
	)
	return uc.invalidateSchemaCache(ctx, modelID)
}

func (uc *assessmentModelUsecase) AddSection(ctx context.Context, modelID string, request *requests.CreateSection) (string, error) {
	model, err := uc.ModelSchemaRepository.FindModelByID(ctx, modelID)
	if err != nil {
		return "", err
	}
	if model == nil {
		return "", exceptions.ErrModelNotFound(nil)
	}

	now := time.Now()
	section := &models.AssessmentSection{
		ModelID:     modelID,
		Title:       request.Title,
		Description: request.Description,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	sectionID, err := uc.ModelSchemaRepository.CreateSection(ctx, section)
	if err != nil {
		return "", err
	}

	err = uc.invalidateSchemaCache(ctx, modelID)
	if err != nil {
		return "", err
	}
	return sectionID, nil
}

func (uc *assessmentModelUsecase) UpdateSection(ctx context.Context, sectionID string, request *requests.UpdateSection) error {
	section, err := uc.ModelSchemaRepository.FindSectionByID(ctx, sectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return exceptions.ErrSectionNotFound(nil)
	}

	section.Title = request.Title
	section.Description = request.Description
	section.UpdatedAt = time.Now()

	err = uc.ModelSchemaRepository.UpdateSection(ctx, section)
	if err != nil {
		return err
	}
	return uc.invalidateSchemaCache(ctx, section.ModelID)
}

func (uc *assessmentModelUsecase) DeleteSectionByID(ctx context.Context, sectionID string) error {
	section, err := uc.ModelSchemaRepository.FindSectionByID(ctx, sectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return exceptions.ErrSectionNotFound(nil)
	}

	err = uc.ModelSchemaRepository.DeleteSectionByID(ctx, sectionID)
	if err != nil {
		return err
	}
	return uc.invalidateSchemaCache(ctx, section.ModelID)
}

func (uc *assessmentModelUsecase) AddField(ctx context.Context, sectionID string, request *requests.CreateField) (string, error) {
	section, err := uc.ModelSchemaRepository.FindSectionByID(ctx, sectionID)
	if err != nil {
		return "", err
	}
	if section == nil {
		return "", exceptions.ErrSectionNotFound(nil)
	}

	fieldType, options, customErr := normalizeFieldDeclaration(request.Type, request.Options)
	if customErr != nil {
		return "", customErr
	}

	now := time.Now()
	field := &models.AssessmentField{
		SectionID: sectionID,
		Label:     request.Label,
		Type:      string(fieldType),
		Required:  request.Required,
		Options:   options,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	fieldID, err := uc.ModelSchemaRepository.CreateField(ctx, field)
	if err != nil {
		return "", err
	}

	err = uc.invalidateSchemaCache(ctx, section.ModelID)
	if err != nil {
		return "", err
	}
	return fieldID, nil
}

func (uc *assessmentModelUsecase) UpdateField(ctx context.Context, fieldID string, request *requests.UpdateField) error {
	field, err := uc.ModelSchemaRepository.FindFieldByID(ctx, fieldID)
	if err != nil {
		return err
	}
	if field == nil {
		return exceptions.ErrFieldNotFound(nil)
	}

	fieldType, options, customErr := normalizeFieldDeclaration(request.Type, request.Options)
	if customErr != nil {
		return customErr
	}

	field.Label = request.Label
	field.Type = string(fieldType)
	field.Required = request.Required
	field.Options = options
	field.UpdatedAt = time.Now()

	err = uc.ModelSchemaRepository.UpdateField(ctx, field)
	if err != nil {
		return err
	}

	section, err := uc.ModelSchemaRepository.FindSectionByID(ctx, field.SectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return nil
	}
	return uc.invalidateSchemaCache(ctx, section.ModelID)
}

func (uc *assessmentModelUsecase) DeleteFieldByID(ctx context.Context, fieldID string) error {
	field, err := uc.ModelSchemaRepository.FindFieldByID(ctx, fieldID)
	if err != nil {
		return err
	}
	if field == nil {
		return exceptions.ErrFieldNotFound(nil)
	}

	err = uc.ModelSchemaRepository.DeleteFieldByID(ctx, fieldID)
	if err != nil {
		return err
	}

	section, err := uc.ModelSchemaRepository.FindSectionByID(ctx, field.SectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return nil
	}
	return uc.invalidateSchemaCache(ctx, section.ModelID)
}

// LoadSchema serves the ordered aggregate from the redis cache when warm and
// falls back to mongo, caching the result. Every authoring write for the
// model invalidates the cached entry, so a hit is never stale.
func (uc *assessmentModelUsecase) LoadSchema(ctx context.Context, modelID string) (*models.ModelSchema, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyModelSchemaFormat, modelID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if cached != "" {
		var schema models.ModelSchema
		err = json.Unmarshal([]byte(cached), &schema)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return &schema, nil
	}

	schema, err := uc.ModelSchemaRepository.FindSchemaByModelID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, exceptions.ErrModelNotFound(nil)
	}

	ttl := time.Duration(uc.InternalConfig.App.SchemaCacheTTLInSeconds) * time.Second
	err = uc.RedisRepository.Set(ctx, cacheKey, schema, ttl)
	if err != nil {
		return nil, err
	}
	return schema, nil
}

func (uc *assessmentModelUsecase) invalidateSchemaCache(ctx context.Context, modelID string) error {
	return uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyModelSchemaFormat, modelID))
}

func convertModelIntoResponse(model *models.AssessmentModel) responses.AssessmentModel {
	return responses.AssessmentModel{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   model.UpdatedAt.Format(time.RFC3339),
	}
}

func convertSectionIntoResponse(section *models.AssessmentSection) responses.AssessmentSection {
	return responses.AssessmentSection{
		ID:          section.ID,
		ModelID:     section.ModelID,
		Title:       section.Title,
		Description: section.Description,
		OrderIndex:  section.OrderIndex,
	}
}

func convertFieldIntoResponse(field *models.AssessmentField) responses.AssessmentField {
	return responses.AssessmentField{
		ID:         field.ID,
		SectionID:  field.SectionID,
		Label:      field.Label,
		Type:       field.Type,
		Required:   field.Required,
		Options:    field.Options,
		OrderIndex: field.OrderIndex,
	}
}
