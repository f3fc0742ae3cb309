package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/jobs"
	"go-pharmacy-api/pkg/database"

	"github.com/joho/godotenv"
)

// The worker runs the periodic maintenance tasks: overdue-credit
// flagging, read-notification purge and the expiry sweep.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	db := database.ConnectDB()

	creditRepo := repository.NewCreditRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	// No websocket hub and no list cache in the worker; both degrade
	// to no-ops.
	notificationService := service.NewNotificationService(notificationRepo, nil)
	creditService := service.NewCreditService(creditRepo, notificationRepo, db, nil)

	handlers := jobs.NewHandlers(creditService, notificationService, notificationRepo, db)
	worker, err := jobs.NewWorker(redisAddr, handlers)
	if err != nil {
		log.Fatal("Failed to build worker: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Worker started")
	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal("Worker stopped: ", err)
	}
	log.Println("Worker exited")
}
