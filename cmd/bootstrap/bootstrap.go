package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"medops-backend/config"
	"medops-backend/internal/infrastructure/cache"
	"medops-backend/internal/infrastructure/database"
	"medops-backend/internal/repository"
	"medops-backend/internal/service"
	"medops-backend/internal/storage"
	"medops-backend/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// App holds all dependencies for the application
type App struct {
	Config         *config.Config
	Storage        *storage.Storage
	RedisClient    *redis.Client
	MongoClient    *mongo.Client
	Chat           usecase.ChatUsecase
	Transcriptions *service.TranscriptionService

	// Transcriber is optional; when set, Run starts a worker that drains
	// the transcription queue.
	Transcriber service.Transcriber
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()
	log := logrus.StandardLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	store, err := storage.Open(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	app.Storage = store
	logrus.Info("Storage opened successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	mongoClient, chatDB, err := database.ConnectMongo(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	app.MongoClient = mongoClient
	logrus.Info("MongoDB connected successfully")

	app.Chat = usecase.NewChatUsecase(log, repository.NewMessageRepository(chatDB))
	app.Transcriptions = service.NewTranscriptionService(redisClient, log, cfg.Transcribe.Queue)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// Run blocks until an interrupt signal arrives, keeping background workers
// alive in the meantime.
func (app *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if app.Transcriber != nil {
		go app.Transcriptions.RunWorker(ctx, app.Transcriber)
	}

	logrus.Infof("MedOps backend ready (env: %s)", app.Config.App.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down...")
	cancel()
	app.Close()
	logrus.Info("Shutdown complete")
}

// Close closes all connections (database, redis, mongo)
func (app *App) Close() {
	if app.Storage != nil {
		if err := app.Storage.Close(); err != nil {
			logrus.Errorf("Failed to close storage: %v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.MongoClient != nil {
		if err := app.MongoClient.Disconnect(context.Background()); err != nil {
			logrus.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}
}
