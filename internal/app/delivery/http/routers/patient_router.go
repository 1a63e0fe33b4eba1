package routers

import (
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/app/services/core/patients"
	"avalia-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	patientIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)

	router.Get("/", patientController.FindAllPatients)
	router.Get(patientIDPattern, patientController.FindPatientByID)
	router.Post("/", patientController.CreatePatient)
	router.Put(patientIDPattern, patientController.UpdatePatient)
	router.With(middlewares.RequireSuperadminAPIKey).Delete(patientIDPattern, patientController.DeletePatientByID)
}
