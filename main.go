package main

import (
	"context"
	"log"
	"time"

	"concert-venue/cmd"
	"concert-venue/internal/auth"
	"concert-venue/internal/data/fixture"
	"concert-venue/internal/data/repository"
	"concert-venue/internal/data/repository/memory"
	"concert-venue/internal/events"
	"concert-venue/internal/wire"
	"concert-venue/pkg/database"
	"concert-venue/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("store", config.Store.Driver),
		zap.String("auth", config.Auth.Mode),
		zap.String("events", config.Events.Driver),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Store
	var repos *repository.Repository
	switch config.Store.Driver {
	case utils.StorePostgres:
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	default:
		repos = memory.NewRepository(logger)
	}

	if config.Store.SeedFixtures {
		if err := fixture.Load(ctx, repos, config.Auth.BcryptCost); err != nil {
			logger.Fatal("Failed to load fixtures", zap.Error(err))
		}
		logger.Info("Fixtures loaded")
	}

	// Session cache is optional
	var cache *redis.Client
	if config.Redis.Enabled {
		cache, err = database.InitRedis(ctx, config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, sessions will not be cached", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	var authenticator auth.Authenticator
	switch config.Auth.Mode {
	case utils.AuthModeJWT:
		authenticator = auth.NewJWTManager(config.Auth.JWTSecret, config.TokenTTL(), logger)
	default:
		authenticator = auth.NewSessionManager(repos.Session, config.TokenTTL(), cache, config.Redis.SessionTTL, logger)
	}

	var publisher events.Publisher = events.NopPublisher{}
	switch config.Events.Driver {
	case utils.EventsKafka:
		publisher = events.NewKafkaPublisher(config.Events.KafkaBrokers, config.Events.KafkaTopic, config.App.Name, logger)
	case utils.EventsRabbitMQ:
		publisher = events.NewRabbitMQPublisher(config.Events.RabbitMQURL, config.Events.RabbitMQQueue, config.App.Name, logger)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", zap.Error(err))
		}
	}()

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		Repo:          repos,
		Authenticator: authenticator,
		Publisher:     publisher,
	}, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
