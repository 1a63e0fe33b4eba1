package routers

import (
	"avalia-service/internal/app/config"
	"avalia-service/internal/app/delivery/http/middlewares"
	assessmentModels "avalia-service/internal/app/services/core/assessment_models"
	"avalia-service/internal/app/services/core/assessments"
	"avalia-service/internal/app/services/core/patients"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	assessmentModelController *assessmentModels.AssessmentModelController,
	assessmentController *assessments.AssessmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "X-Api-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/models", func(r chi.Router) {
				attachAssessmentModelRoutes(r, middlewares, assessmentModelController)
			})

			r.Route("/sections", func(r chi.Router) {
				attachSectionRoutes(r, middlewares, assessmentModelController)
			})

			r.Route("/fields", func(r chi.Router) {
				attachFieldRoutes(r, middlewares, assessmentModelController)
			})

			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, assessmentController)
			})
		})
	})
}
