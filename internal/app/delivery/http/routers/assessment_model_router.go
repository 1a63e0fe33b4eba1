package routers

import (
	"avalia-service/internal/app/delivery/http/middlewares"
	assessmentModels "avalia-service/internal/app/services/core/assessment_models"
	"avalia-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

// Authoring writes change the shape of forms every clinician sees, so they
// sit behind the superadmin key. Reads are open to any authenticated client.
func attachAssessmentModelRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentModelController *assessmentModels.AssessmentModelController) {
	modelIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamModelID)
	modelSectionsPattern := fmt.Sprintf("/{%s}/sections", constvars.URLParamModelID)

	router.Get("/", assessmentModelController.FindAllModels)
	router.Get(modelIDPattern, assessmentModelController.FindModelWithSchema)
	router.With(middlewares.RequireSuperadminAPIKey).Post("/", assessmentModelController.CreateModel)
	router.With(middlewares.RequireSuperadminAPIKey).Put(modelIDPattern, assessmentModelController.UpdateModel)
	router.With(middlewares.RequireSuperadminAPIKey).Delete(modelIDPattern, assessmentModelController.DeleteModelByID)
	router.With(middlewares.RequireSuperadminAPIKey).Post(modelSectionsPattern, assessmentModelController.AddSection)
}

func attachSectionRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentModelController *assessmentModels.AssessmentModelController) {
	sectionIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamSectionID)
	sectionFieldsPattern := fmt.Sprintf("/{%s}/fields", constvars.URLParamSectionID)

	router.With(middlewares.RequireSuperadminAPIKey).Put(sectionIDPattern, assessmentModelController.UpdateSection)
	router.With(middlewares.RequireSuperadminAPIKey).Delete(sectionIDPattern, assessmentModelController.DeleteSectionByID)
	router.With(middlewares.RequireSuperadminAPIKey).Post(sectionFieldsPattern, assessmentModelController.AddField)
}

func attachFieldRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentModelController *assessmentModels.AssessmentModelController) {
	fieldIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamFieldID)

	router.With(middlewares.RequireSuperadminAPIKey).Put(fieldIDPattern, assessmentModelController.UpdateField)
	router.With(middlewares.RequireSuperadminAPIKey).Delete(fieldIDPattern, assessmentModelController.DeleteFieldByID)
}
