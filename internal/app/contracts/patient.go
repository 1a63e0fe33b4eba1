package contracts

import (
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"context"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAllPatients(ctx context.Context, page, pageSize int) ([]models.Patient, int, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeletePatientByID(ctx context.Context, patientID string) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (string, error)
	FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	FindAllPatients(ctx context.Context, request *requests.ListPatients) ([]responses.Patient, int, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) error
	DeletePatientByID(ctx context.Context, patientID string) error
}
