package assessments

import (
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAssessmentRepository struct {
	assessments map[string]*models.Assessment
	results     map[string]models.AssessmentResult
	nextID      int
}

func newFakeAssessmentRepository() *fakeAssessmentRepository {
	return &fakeAssessmentRepository{
		assessments: make(map[string]*models.Assessment),
		results:     make(map[string]models.AssessmentResult),
	}
}

func (r *fakeAssessmentRepository) resultKey(assessmentID, fieldID string) string {
	return fmt.Sprintf("%s:%s", assessmentID, fieldID)
}

func (r *fakeAssessmentRepository) CreateAssessment(ctx context.Context, assessment *models.Assessment) (string, error) {
	r.nextID++
	id := fmt.Sprintf("a%d", r.nextID)
	stored := *assessment
	stored.ID = id
	r.assessments[id] = &stored
	return id, nil
}

func (r *fakeAssessmentRepository) FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	assessment, ok := r.assessments[assessmentID]
	if !ok {
		return nil, nil
	}
	copied := *assessment
	return &copied, nil
}

func (r *fakeAssessmentRepository) FindAllAssessments(ctx context.Context, patientID string, status models.AssessmentStatus, page, pageSize int) ([]models.Assessment, int, error) {
	var out []models.Assessment
	for _, assessment := range r.assessments {
		if patientID != "" && assessment.PatientID != patientID {
			continue
		}
		if status != "" && assessment.Status != status {
			continue
		}
		out = append(out, *assessment)
	}
	return out, len(out), nil
}

func (r *fakeAssessmentRepository) UpdateAssessment(ctx context.Context, assessment *models.Assessment) error {
	if _, ok := r.assessments[assessment.ID]; !ok {
		return errors.New("missing assessment")
	}
	copied := *assessment
	r.assessments[assessment.ID] = &copied
	return nil
}

func (r *fakeAssessmentRepository) DeleteAssessmentByID(ctx context.Context, assessmentID string) error {
	delete(r.assessments, assessmentID)
	for key, result := range r.results {
		if result.AssessmentID == assessmentID {
			delete(r.results, key)
		}
	}
	return nil
}

func (r *fakeAssessmentRepository) UpsertResults(ctx context.Context, results []models.AssessmentResult) error {
	for _, result := range results {
		r.results[r.resultKey(result.AssessmentID, result.FieldID)] = result
	}
	return nil
}

func (r *fakeAssessmentRepository) FindResultsByAssessmentID(ctx context.Context, assessmentID string) ([]models.AssessmentResult, error) {
	var out []models.AssessmentResult
	for _, result := range r.results {
		if result.AssessmentID == assessmentID {
			out = append(out, result)
		}
	}
	return out, nil
}

type fakeModelSchemaUsecase struct {
	contracts.ModelSchemaUsecase
	schema *models.ModelSchema
}

func (f *fakeModelSchemaUsecase) LoadSchema(ctx context.Context, modelID string) (*models.ModelSchema, error) {
	if f.schema == nil || f.schema.Model.ID != modelID {
		return nil, exceptions.ErrModelNotFound(nil)
	}
	return f.schema, nil
}

type fakeModelSchemaRepository struct {
	contracts.ModelSchemaRepository
	foreignFields map[string]*models.AssessmentField
}

func (f *fakeModelSchemaRepository) FindFieldByID(ctx context.Context, fieldID string) (*models.AssessmentField, error) {
	return f.foreignFields[fieldID], nil
}

type fakePatientRepository struct {
	contracts.PatientRepository
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

type fakeNotificationQueue struct {
	events []*contracts.AssessmentEvent
	fail   bool
}

func (f *fakeNotificationQueue) PublishAssessmentEvent(ctx context.Context, event *contracts.AssessmentEvent) error {
	if f.fail {
		return errors.New("broker down")
	}
	f.events = append(f.events, event)
	return nil
}

func intakeSchema() *models.ModelSchema {
	return &models.ModelSchema{
		Model: models.AssessmentModel{ID: "m1", Name: "Avaliação Inicial"},
		Sections: []models.SchemaSection{
			{
				Section: models.AssessmentSection{ID: "s1", ModelID: "m1", Title: "Geral", OrderIndex: 1},
				Fields: []models.AssessmentField{
					{ID: "f1", SectionID: "s1", Label: "Queixa principal", Type: "text", Required: true, OrderIndex: 1},
					{ID: "f2", SectionID: "s1", Label: "Peso (kg)", Type: "number", OrderIndex: 2},
					{ID: "f3", SectionID: "s1", Label: "Humor", Type: "radio", Options: []string{"bom", "ruim"}, OrderIndex: 3},
				},
			},
		},
	}
}

type testEnv struct {
	usecase    *assessmentUsecase
	repository *fakeAssessmentRepository
	queue      *fakeNotificationQueue
}

func newTestEnv() *testEnv {
	repository := newFakeAssessmentRepository()
	queue := &fakeNotificationQueue{}
	usecase := &assessmentUsecase{
		AssessmentRepository: repository,
		ModelSchemaUsecase:   &fakeModelSchemaUsecase{schema: intakeSchema()},
		ModelSchemaRepository: &fakeModelSchemaRepository{
			foreignFields: map[string]*models.AssessmentField{
				"foreign-field": {ID: "foreign-field", SectionID: "other-section", Type: "text"},
			},
		},
		PatientRepository: &fakePatientRepository{
			patients: map[string]*models.Patient{
				"p1": {ID: "p1", Name: "Maria"},
			},
		},
		NotificationQueue: queue,
		Log:               zap.NewNop(),
	}
	return &testEnv{usecase: usecase, repository: repository, queue: queue}
}

func (env *testEnv) createScheduledAssessment(t *testing.T) string {
	t.Helper()
	response, err := env.usecase.CreateAssessment(context.Background(), &requests.CreateAssessment{
		ModelID:   "m1",
		PatientID: "p1",
		Title:     "Sessão 1",
		Date:      "2026-08-29",
	})
	require.NoError(t, err)
	return response.ID
}

func TestCreateAssessment(t *testing.T) {
	env := newTestEnv()

	response, err := env.usecase.CreateAssessment(context.Background(), &requests.CreateAssessment{
		ModelID:   "m1",
		PatientID: "p1",
		Title:     "Sessão 1",
		Date:      "2026-08-29",
	})
	require.NoError(t, err)

	assert.Equal(t, "scheduled", response.Status)
	assert.Equal(t, "agendada", response.StatusLabel)
	require.Len(t, env.queue.events, 1)
	assert.Equal(t, contracts.AssessmentEventCreated, env.queue.events[0].Type)
}

func TestCreateAssessmentUnknownPatient(t *testing.T) {
	env := newTestEnv()

	_, err := env.usecase.CreateAssessment(context.Background(), &requests.CreateAssessment{
		ModelID:   "m1",
		PatientID: "ghost",
		Title:     "Sessão 1",
		Date:      "2026-08-29",
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
}

func TestCreateAssessmentWithValuesStartsInProgress(t *testing.T) {
	env := newTestEnv()

	response, err := env.usecase.CreateAssessment(context.Background(), &requests.CreateAssessment{
		ModelID:   "m1",
		PatientID: "p1",
		Title:     "Sessão 1",
		Date:      "2026-08-29",
		Values:    map[string]interface{}{"f1": "ansiedade"},
	})
	require.NoError(t, err)

	stored, _ := env.repository.FindAssessmentByID(context.Background(), response.ID)
	assert.Equal(t, models.AssessmentStatusInProgress, stored.Status)

	results, _ := env.repository.FindResultsByAssessmentID(context.Background(), response.ID)
	require.Len(t, results, 1)
	assert.Equal(t, "ansiedade", results[0].Value)
}

func TestCreateAssessmentRejectedValuesPersistNothing(t *testing.T) {
	env := newTestEnv()

	_, err := env.usecase.CreateAssessment(context.Background(), &requests.CreateAssessment{
		ModelID:   "m1",
		PatientID: "p1",
		Title:     "Sessão 1",
		Date:      "2026-08-29",
		Values: map[string]interface{}{
			"f1": "dores de cabeça",
			"f3": "talvez",
		},
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindValidation, customErr.Kind)

	assert.Empty(t, env.repository.assessments, "a rejected initial batch must not leave an instance behind")
	assert.Empty(t, env.repository.results)
	assert.Empty(t, env.queue.events)
}

func TestSubmitValuesAllOrNothing(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	err := env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{
		"f1": "dor de cabeça",
		"f3": "talvez", // not one of the options
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	require.Len(t, customErr.Fields, 1)
	assert.Equal(t, "f3", customErr.Fields[0].FieldID)
	assert.Equal(t, exceptions.KindInvalidOption, customErr.Fields[0].Kind)

	results, _ := env.repository.FindResultsByAssessmentID(context.Background(), assessmentID)
	assert.Empty(t, results, "a rejected batch stores nothing, including the valid entries")

	stored, _ := env.repository.FindAssessmentByID(context.Background(), assessmentID)
	assert.Equal(t, models.AssessmentStatusScheduled, stored.Status, "a rejected batch does not advance the status")
}

func TestSubmitValuesUpsertIsIdempotent(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	err := env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{"f1": "primeira versão"})
	require.NoError(t, err)
	err = env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{"f1": "versão corrigida"})
	require.NoError(t, err)

	results, _ := env.repository.FindResultsByAssessmentID(context.Background(), assessmentID)
	require.Len(t, results, 1, "resubmission overwrites, never duplicates")
	assert.Equal(t, "versão corrigida", results[0].Value)
}

func TestSubmitValuesFirstSubmissionAdvancesStatus(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	err := env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{"f1": "ok"})
	require.NoError(t, err)

	stored, _ := env.repository.FindAssessmentByID(context.Background(), assessmentID)
	assert.Equal(t, models.AssessmentStatusInProgress, stored.Status)
}

func TestSubmitValuesRequiredMissing(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	err := env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{"f2": "70"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	require.Len(t, customErr.Fields, 1)
	assert.Equal(t, "f1", customErr.Fields[0].FieldID)
}

func TestSubmitValuesRequiredSatisfiedByStoredAnswer(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	require.NoError(t, env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{"f1": "ok"}))

	// A later partial batch may omit f1 because it is already on file.
	err := env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{"f2": "70"})
	require.NoError(t, err)

	results, _ := env.repository.FindResultsByAssessmentID(context.Background(), assessmentID)
	assert.Len(t, results, 2)
}

func TestSubmitValuesSkipsEmptyOptional(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	err := env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{
		"f1": "ok",
		"f2": "   ",
	})
	require.NoError(t, err)

	results, _ := env.repository.FindResultsByAssessmentID(context.Background(), assessmentID)
	require.Len(t, results, 1)
	assert.Equal(t, "f1", results[0].FieldID)
}

func TestSubmitValuesCrossModelReference(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	err := env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{
		"f1":            "ok",
		"foreign-field": "belongs to another model",
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	require.Len(t, customErr.Fields, 1)
	assert.Equal(t, exceptions.KindCrossModelReference, customErr.Fields[0].Kind)
}

func TestSubmitValuesUnknownField(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	err := env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{
		"f1":     "ok",
		"no-one": "x",
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	require.Len(t, customErr.Fields, 1)
	assert.Equal(t, exceptions.KindNotFound, customErr.Fields[0].Kind)
}

func TestSubmitValuesTerminalAssessment(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	require.NoError(t, env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{"f1": "ok"}))
	_, err := env.usecase.UpdateStatus(context.Background(), assessmentID, "completed")
	require.NoError(t, err)

	err = env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{"f2": "70"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindInvalidTransition, customErr.Kind)
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	t.Run("scheduled cannot jump to completed", func(t *testing.T) {
		_, err := env.usecase.UpdateStatus(context.Background(), assessmentID, "completed")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindInvalidTransition, customErr.Kind)
	})

	t.Run("accepts legacy spelling", func(t *testing.T) {
		response, err := env.usecase.UpdateStatus(context.Background(), assessmentID, "em_andamento")
		require.NoError(t, err)
		assert.Equal(t, "in_progress", response.Status)
	})

	t.Run("completion publishes an event", func(t *testing.T) {
		response, err := env.usecase.UpdateStatus(context.Background(), assessmentID, "completed")
		require.NoError(t, err)
		assert.Equal(t, "concluída", response.StatusLabel)

		last := env.queue.events[len(env.queue.events)-1]
		assert.Equal(t, contracts.AssessmentEventCompleted, last.Type)
	})

	t.Run("terminal state is frozen", func(t *testing.T) {
		_, err := env.usecase.UpdateStatus(context.Background(), assessmentID, "cancelled")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindInvalidTransition, customErr.Kind)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := env.usecase.UpdateStatus(context.Background(), assessmentID, "archived")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})
}

func TestBrokerOutageDoesNotFailTheWrite(t *testing.T) {
	env := newTestEnv()
	env.queue.fail = true

	response, err := env.usecase.CreateAssessment(context.Background(), &requests.CreateAssessment{
		ModelID:   "m1",
		PatientID: "p1",
		Title:     "Sessão 1",
		Date:      "2026-08-29",
	})
	require.NoError(t, err, "a broker outage is logged, the assessment still exists")
	assert.NotEmpty(t, response.ID)
}

func TestGetValues(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	require.NoError(t, env.usecase.SubmitValues(context.Background(), assessmentID, map[string]interface{}{
		"f1": "insônia",
		"f2": "71.50",
	}))

	response, err := env.usecase.GetValues(context.Background(), assessmentID)
	require.NoError(t, err)

	assert.Equal(t, "insônia", response.Values["f1"])
	assert.Equal(t, 71.5, response.Values["f2"])
	assert.Equal(t, "", response.Values["f3"], "unanswered fields come back as defaults")
	assert.Empty(t, response.Warnings)
}

func TestGetValuesSurfacesWarnings(t *testing.T) {
	env := newTestEnv()
	assessmentID := env.createScheduledAssessment(t)

	// Bypass validation to simulate a value stored before an options edit.
	require.NoError(t, env.repository.UpsertResults(context.Background(), []models.AssessmentResult{
		{AssessmentID: assessmentID, FieldID: "f3", Value: "péssimo"},
	}))

	response, err := env.usecase.GetValues(context.Background(), assessmentID)
	require.NoError(t, err)

	require.Len(t, response.Warnings, 1)
	assert.Equal(t, "f3", response.Warnings[0].FieldID)
	assert.Equal(t, string(exceptions.KindInvalidOption), response.Warnings[0].Kind)
}

func TestFindAllAssessmentsRejectsUnknownStatusFilter(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.usecase.FindAllAssessments(context.Background(), &requests.ListAssessments{Status: "archived"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindValidation, customErr.Kind)
}
