package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/delivery/http/controllers"
	"medicore-admin-service/internal/app/delivery/http/middlewares"
	"medicore-admin-service/internal/app/delivery/http/routers"
	"medicore-admin-service/internal/app/drivers/database"
	"medicore-admin-service/internal/app/drivers/logger"
	"medicore-admin-service/internal/app/drivers/messaging"
	"medicore-admin-service/internal/app/drivers/storage"
	"medicore-admin-service/internal/app/services/core/audit"
	"medicore-admin-service/internal/app/services/core/auth"
	"medicore-admin-service/internal/app/services/core/dashboard"
	"medicore-admin-service/internal/app/services/core/lab"
	"medicore-admin-service/internal/app/services/core/medicines"
	"medicore-admin-service/internal/app/services/core/organizations"
	"medicore-admin-service/internal/app/services/core/patients"
	"medicore-admin-service/internal/app/services/core/session"
	"medicore-admin-service/internal/app/services/core/users"
	"medicore-admin-service/internal/app/services/core/workflow"
	"medicore-admin-service/internal/app/services/platform"
	platformauth "medicore-admin-service/internal/app/services/platform/auth"
	"medicore-admin-service/internal/app/services/platform/laborders"
	platformmedicines "medicore-admin-service/internal/app/services/platform/medicines"
	platformorganizations "medicore-admin-service/internal/app/services/platform/organizations"
	platformpatients "medicore-admin-service/internal/app/services/platform/patients"
	"medicore-admin-service/internal/app/services/platform/tasks"
	platformusers "medicore-admin-service/internal/app/services/platform/users"
	"medicore-admin-service/internal/app/services/shared/auditqueue"
	"medicore-admin-service/internal/app/services/shared/locker"
	"medicore-admin-service/internal/app/services/shared/mongodb"
	"medicore-admin-service/internal/app/services/shared/querycache"
	sharedredis "medicore-admin-service/internal/app/services/shared/redis"
	sharedstorage "medicore-admin-service/internal/app/services/shared/storage"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	bootLogger := logger.NewLogrusLogger(internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	bootstrap := &config.Bootstrap{
		Redis:          redisClient,
		MongoDB:        mongoClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		BootLogger:     bootLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(redisClient)
	queryCache := querycache.NewQueryCacheService(redisRepository, zapLogger)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	sessionService := session.NewSessionService(redisRepository)
	exportStorage := sharedstorage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)
	auditRepository := mongodb.NewAuditRepository(mongoClient, driverConfig, internalConfig)

	auditQueue, err := auditqueue.NewService(rabbitConn, internalConfig, zapLogger)
	if err != nil {
		bootLogger.Fatalf("Failed to initialize audit queue: %s", err.Error())
	}

	// Platform clients
	requester := platform.NewRequester(internalConfig, zapLogger)
	authClient := platformauth.NewAuthPlatformClient(requester, zapLogger)
	taskClient := tasks.NewTaskPlatformClient(requester, zapLogger)
	organizationClient := platformorganizations.NewOrganizationPlatformClient(requester, zapLogger)
	userClient := platformusers.NewUserPlatformClient(requester, zapLogger)
	medicineClient := platformmedicines.NewMedicinePlatformClient(requester, zapLogger)
	labOrderClient := laborders.NewLabOrderPlatformClient(requester, zapLogger)
	patientClient := platformpatients.NewPatientPlatformClient(requester, zapLogger)

	// Usecases
	auditUsecase := audit.NewAuditUsecase(auditQueue, auditRepository, zapLogger)
	authUsecase := auth.NewAuthUsecase(authClient, sessionService, internalConfig, zapLogger)
	workflowUsecase := workflow.NewWorkflowUsecase(taskClient, queryCache, lockerService, auditUsecase, internalConfig, zapLogger)
	organizationUsecase := organizations.NewOrganizationUsecase(organizationClient, queryCache, auditUsecase, internalConfig, zapLogger)
	userUsecase := users.NewUserUsecase(userClient, queryCache, auditUsecase, internalConfig, zapLogger)
	medicineUsecase := medicines.NewMedicineUsecase(medicineClient, queryCache, exportStorage, auditUsecase, internalConfig, zapLogger)
	labUsecase := lab.NewLabUsecase(labOrderClient, queryCache, auditUsecase, internalConfig, zapLogger)
	patientUsecase := patients.NewPatientUsecase(patientClient, queryCache, internalConfig, zapLogger)
	dashboardUsecase := dashboard.NewDashboardUsecase(workflowUsecase, organizationUsecase, medicineUsecase, labUsecase, auditRepository, internalConfig, zapLogger)

	// Delivery
	m := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)
	c := &routers.Controllers{
		Auth:         controllers.NewAuthController(zapLogger, authUsecase),
		Workflow:     controllers.NewWorkflowController(zapLogger, workflowUsecase),
		Organization: controllers.NewOrganizationController(zapLogger, organizationUsecase),
		User:         controllers.NewUserController(zapLogger, userUsecase),
		Medicine:     controllers.NewMedicineController(zapLogger, medicineUsecase),
		Lab:          controllers.NewLabController(zapLogger, labUsecase),
		Patient:      controllers.NewPatientController(zapLogger, patientUsecase),
		Dashboard:    controllers.NewDashboardController(zapLogger, dashboardUsecase),
		Audit:        controllers.NewAuditController(zapLogger, auditUsecase, internalConfig),
	}

	bootstrap.Router = routers.SetupRoutes(bootstrap, m, c)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		bootLogger.Infof("HTTP server listening on %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			bootLogger.Fatalf("HTTP server error: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	bootLogger.Info("Shutdown signal received")

	shutdownTimeout := time.Duration(internalConfig.App.ShutdownTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		bootLogger.Errorf("HTTP server shutdown error: %s", err.Error())
	}
	if err := bootstrap.Shutdown(ctx); err != nil {
		bootLogger.Errorf("Bootstrap shutdown error: %s", err.Error())
	}
	bootLogger.Info("Server stopped")
}
