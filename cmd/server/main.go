// Package main runs the Southlake admin API server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/southlake-academy/admin-api/config"
	"github.com/southlake-academy/admin-api/internal/assets"
	"github.com/southlake-academy/admin-api/internal/auth"
	"github.com/southlake-academy/admin-api/internal/catalog"
	"github.com/southlake-academy/admin-api/internal/export"
	"github.com/southlake-academy/admin-api/internal/inflight"
	"github.com/southlake-academy/admin-api/internal/inquiries"
	"github.com/southlake-academy/admin-api/internal/middleware"
	"github.com/southlake-academy/admin-api/internal/models"
	"github.com/southlake-academy/admin-api/internal/registrations"
	"github.com/southlake-academy/admin-api/pkg/database"
	"github.com/southlake-academy/admin-api/pkg/redis"
	"github.com/southlake-academy/admin-api/pkg/response"
	"github.com/southlake-academy/admin-api/pkg/storage"
	"github.com/southlake-academy/admin-api/pkg/utils"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	var s3Client *storage.S3
	if cfg.AWS.Region != "" {
		s3Client, err = storage.NewS3(ctx, storage.S3Config{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			AssetsBucket:    cfg.AWS.AssetsBucket,
		}, logger)
		if err != nil {
			logger.Warn("asset storage disabled", zap.Error(err))
		}
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)
	deleteGuard := inflight.NewRedisGuard(rdb.Client, "inflight:delete")

	// Auth
	authRepo := auth.NewRepository(pool)
	authHandler := auth.NewHandler(authRepo, jwtService, logger)
	seedAdmin(ctx, authRepo, cfg.Admin, logger)

	// Program catalog
	catalogRepo := catalog.NewRepository(pool)
	catalogHandler := catalog.NewHandler(catalogRepo, deleteGuard, logger)

	// Registrations and exports
	registrationRepo := registrations.NewRepository(pool)
	registrationHandler := registrations.NewHandler(registrationRepo, rdb.Client, logger)
	exportHandler := export.NewHandler(registrationRepo, logger)

	// Contact-us and schedule inboxes
	inquiriesRepo := inquiries.NewRepository(pool)
	inquiriesHandler := inquiries.NewHandler(inquiriesRepo, deleteGuard, logger)

	// Asset host
	var assetsUploader assets.Uploader
	if s3Client != nil {
		assetsUploader = s3Client
	}
	assetsHandler := assets.NewHandler(assetsUploader, cfg.AWS.UploadPreset, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	router.POST("/api/auth/login", authHandler.Login)

	// Protected API (JWT required)
	api := router.Group("/api")
	api.Use(middleware.JWT(jwtService))
	{
		api.POST("/auth/register", middleware.RequireRole("admin"), authHandler.Register)

		// Program catalog (generic across categories)
		api.GET("/programs/:category", catalogHandler.List)
		api.POST("/programs/:category", catalogHandler.Create)
		api.GET("/programs/:category/:id", catalogHandler.Get)
		api.PUT("/programs/:category/:id", catalogHandler.Update)
		api.DELETE("/programs/:category/:id", catalogHandler.Delete)

		// Registrations
		api.GET("/registrations/:category", registrationHandler.ListByCategory)
		api.POST("/registrations", registrationHandler.Create)
		api.POST("/registrations/payment-history", registrationHandler.PaymentHistory)

		// Document exports
		api.GET("/registrations/:category/:id/pdf", exportHandler.RegistrationPDF)
		api.GET("/exports/:category", exportHandler.Spreadsheet)

		// Inboxes
		api.GET("/contacts", inquiriesHandler.ListContacts)
		api.DELETE("/contacts/:id", inquiriesHandler.DeleteContact)
		api.GET("/schedule", inquiriesHandler.ListScheduleRequests)
		api.DELETE("/schedule/:id", inquiriesHandler.DeleteScheduleRequest)

		// Asset host
		api.POST("/assets/images", assetsHandler.UploadImage)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func seedAdmin(ctx context.Context, repo *auth.Repository, admin config.AdminConfig, logger *zap.Logger) {
	if admin.Password == "" {
		logger.Warn("ADMIN_PASSWORD not set; skipping admin seed")
		return
	}
	hash, err := utils.HashPassword(admin.Password)
	if err != nil {
		logger.Fatal("hash admin password", zap.Error(err))
	}
	if err := repo.EnsureAdmin(ctx, admin.Email, hash, admin.FullName); err != nil {
		logger.Fatal("seed admin", zap.Error(err))
	}
	logger.Info("admin account ensured", zap.String("email", admin.Email), zap.String("role", string(models.RoleAdmin)))
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
