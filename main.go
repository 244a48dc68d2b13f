package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amigdala/cms-backend/handlers"
	"github.com/amigdala/cms-backend/internal/config"
	contentrepo "github.com/amigdala/cms-backend/internal/content/repository"
	contentsvc "github.com/amigdala/cms-backend/internal/content/service"
	"github.com/amigdala/cms-backend/internal/database"
	mediarepo "github.com/amigdala/cms-backend/internal/media/repository"
	mediasvc "github.com/amigdala/cms-backend/internal/media/service"
	"github.com/amigdala/cms-backend/internal/seed"
	"github.com/amigdala/cms-backend/internal/sessions"
	"github.com/amigdala/cms-backend/internal/settings"
	"github.com/amigdala/cms-backend/internal/storage"
	"github.com/amigdala/cms-backend/internal/users"
	"github.com/amigdala/cms-backend/pkg/logger"
	"github.com/amigdala/cms-backend/pkg/metrics"
	"github.com/amigdala/cms-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v storage=%s", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Storage.Backend)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter and sessions can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		rc := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rc.Ping(context.Background()).Err(); err == nil {
			redisClient = rc
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		}
	}

	// Optional global rate limiter (per-admin when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races
	ctx := context.Background()
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	// storage backend: local filesystem by default, MinIO when configured
	var backend storage.Backend
	switch cfg.Storage.Backend {
	case "minio":
		backend, err = storage.NewMinIOBackend(storage.MinIOConfig{
			Endpoint:  cfg.Storage.MinioEndpoint,
			AccessKey: cfg.Storage.MinioAccessKey,
			SecretKey: cfg.Storage.MinioSecretKey,
			UseSSL:    cfg.Storage.MinioUseSSL,
			Bucket:    cfg.Storage.MinioBucket,
		})
		if err != nil {
			logger.Fatalf("failed to initialize MinIO backend: %v", err)
		}
		logger.Infof("Using MinIO media storage: %s/%s", cfg.Storage.MinioEndpoint, cfg.Storage.MinioBucket)
	default:
		backend, err = storage.NewLocalBackend(cfg.Storage.UploadDir)
		if err != nil {
			logger.Fatalf("failed to initialize local storage at %s: %v", cfg.Storage.UploadDir, err)
		}
		logger.Infof("Using local media storage: %s", cfg.Storage.UploadDir)
	}

	// repositories + services
	contentService := contentsvc.New(contentrepo.NewMongoRepo(db.Collection("content")))
	mediaService := mediasvc.New(mediarepo.NewMongoRepo(db.Collection("media")), backend, cfg.Media.MaxUploadBytes, "")
	settingsRepo := settings.NewMongoRepository(db.Collection("settings"))
	userSvc := users.NewService(users.NewMongoRepository(db.Collection("users")))

	// sessions prefer Redis when available, Mongo otherwise
	var sessionsSvc *sessions.Service
	if redisClient != nil {
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("Using Redis for session storage")
	} else {
		sessionsSvc = sessions.NewService(sessions.NewMongoRepository(db.Collection("sessions")))
	}

	if cfg.Seed.OnStart {
		if err := seed.Run(ctx, contentService, settingsRepo, userSvc, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			logger.Warnf("seeding failed: %v", err)
		}
	}

	// route wiring: public reads on the root group, writes behind the admin JWT
	public := r.Group("/")
	admin := r.Group("/", middleware.RequireAdmin(cfg.JWT.Secret))

	handlers.NewContentHandler(contentService).Register(public, admin)
	handlers.NewRenderHandler(contentService).Register(public)
	handlers.NewMediaHandler(mediaService, backend).Register(public, admin)
	handlers.NewSettingsHandler(settingsRepo).Register(public, admin)
	handlers.NewAuthHandler(cfg, userSvc, sessionsSvc).Register(public)
	handlers.RegisterSwagger(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when critical dependencies answer
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps["mongo"] = client.Ping(pingCtx, nil) == nil
		if !deps["mongo"] {
			ready = false
		}

		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil && redisClient.Ping(pingCtx).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting cms backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
