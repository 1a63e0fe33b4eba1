package assessmentModels

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

type AssessmentModelController struct {
	Log                *zap.Logger
	ModelSchemaUsecase contracts.ModelSchemaUsecase
	StoreTimeout       time.Duration
}

func NewAssessmentModelController(logger *zap.Logger, internalConfig *config.InternalConfig, modelSchemaUsecase contracts.ModelSchemaUsecase) *AssessmentModelController {
	return &AssessmentModelController{
		Log:                logger,
		ModelSchemaUsecase: modelSchemaUsecase,
		StoreTimeout:       time.Duration(internalConfig.App.StoreTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *AssessmentModelController) CreateModel(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAssessmentModel)
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

	modelID, err := ctrl.ModelSchemaUsecase.CreateModel(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ModelCreatedSuccess, map[string]string{"id": modelID})
}

func (ctrl *AssessmentModelController) FindAllModels(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ListAssessmentModels)
	request.Page, _ = strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	request.PageSize, _ = strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	request.Normalize()

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	response, total, err := ctrl.ModelSchemaUsecase.FindAllModels(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ModelListSuccess, pagination, response)
}

func (ctrl *AssessmentModelController) FindModelWithSchema(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, constvars.URLParamModelID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	response, err := ctrl.ModelSchemaUsecase.FindModelWithSchema(ctx, modelID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModelGetSuccess, response)
}

func (ctrl *AssessmentModelController) UpdateModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, constvars.URLParamModelID)

	request := new(requests.UpdateAssessmentModel)
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

	err = ctrl.ModelSchemaUsecase.UpdateModel(ctx, modelID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModelUpdatedSuccess, nil)
}

func (ctrl *AssessmentModelController) DeleteModelByID(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, constvars.URLParamModelID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	err := ctrl.ModelSchemaUsecase.DeleteModelByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModelDeletedSuccess, nil)
}

func (ctrl *AssessmentModelController) AddSection(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, constvars.URLParamModelID)

	request := new(requests.CreateSection)
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

	sectionID, err := ctrl.ModelSchemaUsecase.AddSection(ctx, modelID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SectionCreatedSuccess, map[string]string{"id": sectionID})
}

func (ctrl *AssessmentModelController) UpdateSection(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, constvars.URLParamSectionID)

	request := new(requests.UpdateSection)
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

	err = ctrl.ModelSchemaUsecase.UpdateSection(ctx, sectionID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionUpdatedSuccess, nil)
}

func (ctrl *AssessmentModelController) DeleteSectionByID(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, constvars.URLParamSectionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	err := ctrl.ModelSchemaUsecase.DeleteSectionByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionDeletedSuccess, nil)
}

func (ctrl *AssessmentModelController) AddField(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, constvars.URLParamSectionID)

	request := new(requests.CreateField)
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

	fieldID, err := ctrl.ModelSchemaUsecase.AddField(ctx, sectionID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.FieldCreatedSuccess, map[string]string{"id": fieldID})
}

func (ctrl *AssessmentModelController) UpdateField(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, constvars.URLParamFieldID)

	request := new(requests.UpdateField)
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

	err = ctrl.ModelSchemaUsecase.UpdateField(ctx, fieldID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FieldUpdatedSuccess, nil)
}

func (ctrl *AssessmentModelController) DeleteFieldByID(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, constvars.URLParamFieldID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.StoreTimeout)
	defer cancel()

	err := ctrl.ModelSchemaUsecase.DeleteFieldByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FieldDeletedSuccess, nil)
}
