package contracts

import (
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"context"
)

type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessment *models.Assessment) (string, error)
	FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error)
	FindAllAssessments(ctx context.Context, patientID string, status models.AssessmentStatus, page, pageSize int) ([]models.Assessment, int, error)
	UpdateAssessment(ctx context.Context, assessment *models.Assessment) error
	DeleteAssessmentByID(ctx context.Context, assessmentID string) error

	// UpsertResults writes the whole batch in one ordered bulk operation,
	// one upsert per (assessmentId, fieldId) pair.
	UpsertResults(ctx context.Context, results []models.AssessmentResult) error
	FindResultsByAssessmentID(ctx context.Context, assessmentID string) ([]models.AssessmentResult, error)
}

type AssessmentUsecase interface {
	CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error)
	FindAssessmentByID(ctx context.Context, assessmentID string) (*responses.Assessment, error)
	FindAllAssessments(ctx context.Context, request *requests.ListAssessments) ([]responses.Assessment, int, error)
	UpdateAssessment(ctx context.Context, assessmentID string, request *requests.UpdateAssessment) error
	UpdateStatus(ctx context.Context, assessmentID string, status string) (*responses.Assessment, error)
	SubmitValues(ctx context.Context, assessmentID string, values map[string]interface{}) error
	GetValues(ctx context.Context, assessmentID string) (*responses.AssessmentValues, error)
	DeleteAssessmentByID(ctx context.Context, assessmentID string) error
}
