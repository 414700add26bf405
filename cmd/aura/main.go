package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"auracoach/internal/app"
	"auracoach/internal/config"
	"auracoach/internal/ratelimit"
	"auracoach/internal/server"
	"auracoach/internal/util"
	"auracoach/pkg/ai"
	"auracoach/pkg/auth"
	"auracoach/pkg/events"
	"auracoach/pkg/kv"
	"auracoach/pkg/storage"
)

func main() {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	sessionTTL, err := config.ParseSessionTTL(cfg.SessionTTL)
	if err != nil {
		log.Fatalf("failed to parse session TTL: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	var store kv.Store
	var revoker auth.TokenRevoker
	switch cfg.StorageBackend {
	case config.BackendRedis:
		store, err = kv.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		revoker = auth.NewRedisTokenRevoker(cfg.RedisAddr, cfg.RedisPassword)
	case config.BackendPostgres:
		store, err = kv.NewGormStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
	default:
		store = kv.NewMemoryStore()
	}

	var snapshots *storage.Snapshots
	if cfg.MinioEndpoint != "" {
		objects, err := storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("failed to init object storage: %v", err)
		}
		snapshots = storage.NewSnapshots(objects)
	}

	var publisher events.Publisher
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("failed to connect to amqp broker: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	appCore, err := app.New(app.Config{
		Store:      store,
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: sessionTTL,
		Revoker:    revoker,
		Bridge:     ai.NewBridge(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Snapshots:  snapshots,
		Publisher:  publisher,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	var chatLimiter *ratelimit.FixedWindowLimiter
	if cfg.RedisAddr != "" {
		chatLimiter, err = ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, "aura:ratelimit", cfg.ChatRateLimitPerMinute, time.Minute)
	} else {
		chatLimiter, err = ratelimit.NewMemoryFixedWindowLimiter(cfg.ChatRateLimitPerMinute, time.Minute)
	}
	if err != nil {
		log.Fatalf("failed to init rate limiter: %v", err)
	}

	httpServer := server.New(server.Config{
		App:         appCore,
		ChatLimiter: chatLimiter,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("aura server listening", "addr", addr, "backend", cfg.StorageBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}
