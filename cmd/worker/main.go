package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/drivers/database"
	"medicore-admin-service/internal/app/drivers/logger"
	"medicore-admin-service/internal/app/drivers/messaging"
	"medicore-admin-service/internal/app/services/core/audit"
	"medicore-admin-service/internal/app/services/shared/auditqueue"
	"medicore-admin-service/internal/app/services/shared/mongodb"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	bootLogger := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)

	bootstrap := &config.Bootstrap{
		MongoDB:        mongoClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		BootLogger:     bootLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	auditRepository := mongodb.NewAuditRepository(mongoClient, driverConfig, internalConfig)
	auditQueue, err := auditqueue.NewService(rabbitConn, internalConfig, zapLogger)
	if err != nil {
		bootLogger.Fatalf("Failed to initialize audit queue: %s", err.Error())
	}

	worker := audit.NewWorker(auditQueue, auditRepository, zapLogger)

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()
	bootstrap.WorkerStop = func() {
		stop()
		<-done
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	bootLogger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLogger.Errorf("Bootstrap shutdown error: %s", err.Error())
	}
	bootLogger.Info("Worker stopped")
}
