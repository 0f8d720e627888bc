package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"video-catalog/cmd"
	"video-catalog/internal/data/repository"
	"video-catalog/internal/wire"
	"video-catalog/pkg/database"
	"video-catalog/pkg/events"
	"video-catalog/pkg/storage"
	"video-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("storage", config.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	fileStorage, err := storage.New(config.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to init file storage", zap.Error(err))
	}

	deps := wire.Deps{
		Repo:       repository.NewRepository(db, logger),
		Tx:         database.NewTxManager(db, logger),
		Storage:    fileStorage,
		Dispatcher: events.NewLogDispatcher(logger),
	}

	var natsClient *events.Client
	if config.NATS.Enabled() {
		client, closeNATS, err := events.NewClient(config.NATS, logger)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer closeNATS()

		natsClient = client
		deps.Dispatcher = events.NewNATSPublisher(client, logger)
	} else {
		logger.Warn("NATS_URL not set, video events will only be logged")
	}

	// Wire all dependencies
	app := wire.Wiring(deps, config, logger)

	if natsClient != nil {
		consumer := events.NewEncodedConsumer(natsClient, app.Service.Video.UpdateEncodedVideoPath, logger)
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("Failed to start encoded consumer", zap.Error(err))
		}
		defer consumer.Stop()
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
