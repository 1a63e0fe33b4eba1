package patients

import (
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	now := time.Now()
	patient := &models.Patient{
		Name:           request.Name,
		Email:          request.Email,
		Phone:          request.Phone,
		BirthDate:      request.BirthDate,
		Gender:         request.Gender,
		Address:        request.Address,
		MedicalHistory: request.MedicalHistory,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return "", err
	}

	uc.Log.Info("patient created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patientID, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	response := convertPatientIntoResponse(patient)
	return &response, nil
}

func (uc *patientUsecase) FindAllPatients(ctx context.Context, request *requests.ListPatients) ([]responses.Patient, int, error) {
	request.Normalize()

	patients, total, err := uc.PatientRepository.FindAllPatients(ctx, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Patient, len(patients))
	for i, patient := range patients {
		response[i] = convertPatientIntoResponse(&patient)
	}
	return response, total, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) error {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}

	patient.Name = request.Name
	patient.Email = request.Email
	patient.Phone = request.Phone
	patient.BirthDate = request.BirthDate
	patient.Gender = request.Gender
	patient.Address = request.Address
	patient.MedicalHistory = request.MedicalHistory
	patient.UpdatedAt = time.Now()

	return uc.PatientRepository.UpdatePatient(ctx, patient)
}

func (uc *patientUsecase) DeletePatientByID(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}

	err = uc.PatientRepository.DeletePatientByID(ctx, patientID)
	if err != nil {
		return err
	}

	uc.Log.Info("patient deleted with assessments",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func convertPatientIntoResponse(patient *models.Patient) responses.Patient {
	return responses.Patient{
		ID:             patient.ID,
		Name:           patient.Name,
		Email:          patient.Email,
		Phone:          patient.Phone,
		BirthDate:      patient.BirthDate,
		Gender:         patient.Gender,
		Address:        patient.Address,
		MedicalHistory: patient.MedicalHistory,
		CreatedAt:      patient.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      patient.UpdatedAt.Format(time.RFC3339),
	}
}
