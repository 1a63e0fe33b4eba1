package routers

import (
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/app/services/core/assessments"
	"avalia-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *assessments.AssessmentController) {
	assessmentIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamAssessmentID)
	statusPattern := fmt.Sprintf("/{%s}/status", constvars.URLParamAssessmentID)
	valuesPattern := fmt.Sprintf("/{%s}/values", constvars.URLParamAssessmentID)

	router.Get("/", assessmentController.FindAllAssessments)
	router.Get(assessmentIDPattern, assessmentController.FindAssessmentByID)
	router.Get(valuesPattern, assessmentController.GetValues)
	router.Post("/", assessmentController.CreateAssessment)
	router.Put(assessmentIDPattern, assessmentController.UpdateAssessment)
	router.Patch(statusPattern, assessmentController.UpdateStatus)
	router.Post(valuesPattern, assessmentController.SubmitValues)
	router.With(middlewares.RequireSuperadminAPIKey).Delete(assessmentIDPattern, assessmentController.DeleteAssessmentByID)
}
