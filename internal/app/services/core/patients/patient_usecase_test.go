package patients

import (
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patientsByID map[string]*models.Patient
	nextID       int
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{patientsByID: make(map[string]*models.Patient)}
}

func (r *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	r.nextID++
	id := fmt.Sprintf("p%d", r.nextID)
	stored := *patient
	stored.ID = id
	r.patientsByID[id] = &stored
	return id, nil
}

func (r *fakePatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := r.patientsByID[patientID]
	if !ok {
		return nil, nil
	}
	copied := *patient
	return &copied, nil
}

func (r *fakePatientRepository) FindAllPatients(ctx context.Context, page, pageSize int) ([]models.Patient, int, error) {
	var out []models.Patient
	for _, patient := range r.patientsByID {
		out = append(out, *patient)
	}
	return out, len(out), nil
}

func (r *fakePatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	copied := *patient
	r.patientsByID[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepository) DeletePatientByID(ctx context.Context, patientID string) error {
	delete(r.patientsByID, patientID)
	return nil
}

func newPatientTestUsecase() (*patientUsecase, *fakePatientRepository) {
	repository := newFakePatientRepository()
	usecase := &patientUsecase{
		PatientRepository: repository,
		Log:               zap.NewNop(),
	}
	return usecase, repository
}

func TestCreateAndFindPatient(t *testing.T) {
	usecase, _ := newPatientTestUsecase()
	ctx := context.Background()

	patientID, err := usecase.CreatePatient(ctx, &requests.CreatePatient{
		Name:      "Maria Souza",
		Email:     "maria@example.com",
		BirthDate: "1988-04-12",
	})
	require.NoError(t, err)
	require.NotEmpty(t, patientID)

	patient, err := usecase.FindPatientByID(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", patient.Name)
	assert.Equal(t, "maria@example.com", patient.Email)
	assert.Equal(t, "1988-04-12", patient.BirthDate)
	assert.NotEmpty(t, patient.CreatedAt)
}

func TestFindPatientByIDNotFound(t *testing.T) {
	usecase, _ := newPatientTestUsecase()

	_, err := usecase.FindPatientByID(context.Background(), "ghost")
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
}

func TestUpdatePatient(t *testing.T) {
	usecase, repository := newPatientTestUsecase()
	ctx := context.Background()

	patientID, err := usecase.CreatePatient(ctx, &requests.CreatePatient{Name: "Maria Souza"})
	require.NoError(t, err)

	err = usecase.UpdatePatient(ctx, patientID, &requests.UpdatePatient{
		Name:  "Maria Souza Lima",
		Phone: "+55 11 91234-5678",
	})
	require.NoError(t, err)

	stored := repository.patientsByID[patientID]
	assert.Equal(t, "Maria Souza Lima", stored.Name)
	assert.Equal(t, "+55 11 91234-5678", stored.Phone)

	err = usecase.UpdatePatient(ctx, "ghost", &requests.UpdatePatient{Name: "x"})
	require.Error(t, err)
}

func TestDeletePatient(t *testing.T) {
	usecase, repository := newPatientTestUsecase()
	ctx := context.Background()

	patientID, err := usecase.CreatePatient(ctx, &requests.CreatePatient{Name: "Maria Souza"})
	require.NoError(t, err)

	err = usecase.DeletePatientByID(ctx, patientID)
	require.NoError(t, err)
	assert.Empty(t, repository.patientsByID)

	err = usecase.DeletePatientByID(ctx, "ghost")
	require.Error(t, err)
}
