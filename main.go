package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"movie-theater/cmd"
	"movie-theater/internal/data/repository"
	"movie-theater/internal/queue"
	"movie-theater/internal/store"
	"movie-theater/internal/wire"
	"movie-theater/pkg/tasks"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("storage", config.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, config, logger)
	stop()
	logger.Sync()
	if err != nil {
		log.Fatalf("Application stopped: %v", err)
	}
}

// run owns every resource it opens, so an early return still closes them.
func run(ctx context.Context, config *utils.Config, logger *zap.Logger) error {
	// Snapshot storage
	repo, err := repository.NewRepository(ctx, config.Storage, logger)
	if err != nil {
		logger.Error("Failed to open snapshot storage", zap.Error(err))
		return fmt.Errorf("open snapshot storage: %w", err)
	}
	defer repo.Close()

	// Store: seed first, then whatever was persisted
	st := store.New(repo.Snapshot, logger)
	if err := st.Load(ctx); err != nil {
		logger.Error("Failed to load persisted state", zap.Error(err))
		return fmt.Errorf("load persisted state: %w", err)
	}

	// Booking events
	handler := queue.NotificationHandler(st)
	var publisher queue.Publisher = queue.NewLocalPublisher(handler, logger)
	if config.Queue.AMQPURL != "" {
		amqpPublisher, err := queue.NewAMQPPublisher(config.Queue.AMQPURL, logger)
		if err != nil {
			logger.Error("Failed to connect to RabbitMQ", zap.Error(err))
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		publisher = amqpPublisher

		consumer := queue.NewConsumer(config.Queue.AMQPURL, handler, logger)
		go consumer.Run(ctx)
		logger.Info("Booking events routed through RabbitMQ", zap.String("queue", queue.BookingCreatedQueue))
	}
	defer publisher.Close()

	scheduler := tasks.New(logger, 2, 64)
	scheduler.Run()

	// Wire all dependencies
	app := wire.Wiring(st, publisher, scheduler, config, logger)

	serveErr := cmd.APIServer(ctx, app.Router, config.App, logger)
	if serveErr != nil {
		logger.Error("Server stopped with error", zap.Error(serveErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.App.ShutdownTimeout)
	defer cancel()
	if err := scheduler.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Background tasks did not finish", zap.Error(err))
	}

	return serveErr
}
