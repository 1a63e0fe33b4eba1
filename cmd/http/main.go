package main

import (
	"avalia-service/internal/app/config"
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/app/delivery/http/routers"
	"avalia-service/internal/app/drivers/database"
	"avalia-service/internal/app/drivers/logger"
	"avalia-service/internal/app/drivers/messaging"
	assessmentModels "avalia-service/internal/app/services/core/assessment_models"
	"avalia-service/internal/app/services/core/assessments"
	"avalia-service/internal/app/services/core/patients"
	"avalia-service/internal/app/services/shared/notifications"
	"avalia-service/internal/app/services/shared/redis"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	notificationQueue, err := notifications.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.NotificationQueue,
	)
	if err != nil {
		log.Fatalf("Error while initializing notification queue: %v", err)
	}

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, bootstrap.InternalConfig, patientUsecase)

	// Assessment model
	assessmentModelMongoRepository := assessmentModels.NewAssessmentModelMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	assessmentModelUsecase := assessmentModels.NewAssessmentModelUsecase(
		assessmentModelMongoRepository,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	assessmentModelController := assessmentModels.NewAssessmentModelController(bootstrap.Logger, bootstrap.InternalConfig, assessmentModelUsecase)

	// Assessment
	assessmentMongoRepository := assessments.NewAssessmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	assessmentUsecase := assessments.NewAssessmentUsecase(
		assessmentMongoRepository,
		assessmentModelUsecase,
		assessmentModelMongoRepository,
		patientMongoRepository,
		notificationQueue,
		bootstrap.Logger,
	)
	assessmentController := assessments.NewAssessmentController(bootstrap.Logger, bootstrap.InternalConfig, assessmentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		patientController,
		assessmentModelController,
		assessmentController,
	)
}
