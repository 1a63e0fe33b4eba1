package assessments

import (
	"avalia-service/internal/app/config"
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	StoreTimeout      time.Duration
}

func NewAssessmentController(logger *zap.Logger, internalConfig *config.InternalConfig, assessmentUsecase contracts.AssessmentUsecase) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
		StoreTimeout:      time.Duration(internalConfig.App.StoreTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *AssessmentController) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAssessment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.CreateAssessment(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AssessmentCreatedSuccess, response)
}

func (ctrl *AssessmentController) FindAssessmentByID(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentGetSuccess, response)
}

func (ctrl *AssessmentController) FindAllAssessments(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ListAssessments)
	request.Page, _ = strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	request.PageSize, _ = strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	request.PatientID = r.URL.Query().Get(constvars.URLQueryParamPatientID)
	request.Status = r.URL.Query().Get(constvars.URLQueryParamStatus)
	request.Normalize()

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	response, total, err := ctrl.AssessmentUsecase.FindAllAssessments(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.AssessmentListSuccess, pagination, response)
}

func (ctrl *AssessmentController) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	request := new(requests.UpdateAssessment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	err = ctrl.AssessmentUsecase.UpdateAssessment(ctx, assessmentID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentUpdatedSuccess, nil)
}

func (ctrl *AssessmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	request := new(requests.UpdateAssessmentStatus)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.UpdateStatus(ctx, assessmentID, request.Status)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentStatusUpdateSuccess, response)
}

func (ctrl *AssessmentController) SubmitValues(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	request := new(requests.SubmitValues)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	err = ctrl.AssessmentUsecase.SubmitValues(ctx, assessmentID, request.Values)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentValuesSavedSuccess, nil)
}

func (ctrl *AssessmentController) GetValues(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.GetValues(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentValuesGetSuccess, response)
}

func (ctrl *AssessmentController) DeleteAssessmentByID(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	err := ctrl.AssessmentUsecase.DeleteAssessmentByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentDeletedSuccess, nil)
}
