package contracts

import (
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"context"
)

// ModelSchemaRepository is the schema store. Cascade deletes are owned here:
// removing a model takes its sections, fields, assessments and results with
// it. Order index assignment for sections and fields is atomic inside the
// repository (counter document, not read-max-then-insert).
type ModelSchemaRepository interface {
	CreateModel(ctx context.Context, model *models.AssessmentModel) (string, error)
	FindModelByID(ctx context.Context, modelID string) (*models.AssessmentModel, error)
	FindAllModels(ctx context.Context, page, pageSize int) ([]models.AssessmentModel, int, error)
	UpdateModel(ctx context.Context, model *models.AssessmentModel) error
	DeleteModelByID(ctx context.Context, modelID string) error

	CreateSection(ctx context.Context, section *models.AssessmentSection) (string, error)
	FindSectionByID(ctx context.Context, sectionID string) (*models.AssessmentSection, error)
	UpdateSection(ctx context.Context, section *models.AssessmentSection) error
	DeleteSectionByID(ctx context.Context, sectionID string) error

	CreateField(ctx context.Context, field *models.AssessmentField) (string, error)
	FindFieldByID(ctx context.Context, fieldID string) (*models.AssessmentField, error)
	UpdateField(ctx context.Context, field *models.AssessmentField) error
	DeleteFieldByID(ctx context.Context, fieldID string) error

	FindSchemaByModelID(ctx context.Context, modelID string) (*models.ModelSchema, error)
}

type ModelSchemaUsecase interface {
	CreateModel(ctx context.Context, request *requests.CreateAssessmentModel) (string, error)
	FindAllModels(ctx context.Context, request *requests.ListAssessmentModels) ([]responses.AssessmentModel, int, error)
	FindModelWithSchema(ctx context.Context, modelID string) (*responses.ModelSchema, error)
	UpdateModel(ctx context.Context, modelID string, request *requests.UpdateAssessmentModel) error
	DeleteModelByID(ctx context.Context, modelID string) error

	AddSection(ctx context.Context, modelID string, request *requests.CreateSection) (string, error)
	UpdateSection(ctx context.Context, sectionID string, request *requests.UpdateSection) error
	DeleteSectionByID(ctx context.Context, sectionID string) error

	AddField(ctx context.Context, sectionID string, request *requests.CreateField) (string, error)
	UpdateField(ctx context.Context, fieldID string, request *requests.UpdateField) error
	DeleteFieldByID(ctx context.Context, fieldID string) error

	// LoadSchema returns the ordered aggregate for instance flows, served
	// from the redis cache when warm.
	LoadSchema(ctx context.Context, modelID string) (*models.ModelSchema, error)
}
