package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/cotizador/backend/internal/application/catalog"
	documentapp "github.com/cotizador/backend/internal/application/document"
	partnerapp "github.com/cotizador/backend/internal/application/partner"
	quotationapp "github.com/cotizador/backend/internal/application/quotation"
	"github.com/cotizador/backend/internal/infrastructure/config"
	"github.com/cotizador/backend/internal/infrastructure/logger"
	"github.com/cotizador/backend/internal/infrastructure/persistence"
	"github.com/cotizador/backend/internal/interfaces/http/handler"
	"github.com/cotizador/backend/internal/interfaces/http/middleware"
	"github.com/cotizador/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting cotizador backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	itemTypeRepo := persistence.NewGormItemTypeRepository(db.DB)
	quotationRepo := persistence.NewGormQuotationRepository(db.DB)

	// Application services
	clientService := partnerapp.NewClientService(clientRepo)
	itemService := catalogapp.NewItemService(itemRepo, itemTypeRepo)
	itemTypeService := catalogapp.NewItemTypeService(itemTypeRepo)
	quotationService := quotationapp.NewQuotationService(quotationRepo)

	renderer, err := documentapp.NewRenderer(documentapp.Config{
		Locale:       cfg.Document.Locale,
		CurrencyCode: cfg.Document.CurrencyCode,
	})
	if err != nil {
		log.Fatal("Failed to initialize document renderer", zap.Error(err))
	}
	documentService := documentapp.NewService(quotationRepo, renderer)

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	// Handlers and routes
	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine)
	r.Register(systemHandler)
	r.Register(handler.NewClientHandler(clientService, quotationService))
	r.Register(handler.NewItemHandler(itemService, itemTypeService))
	r.Register(handler.NewQuotationHandler(quotationService, documentService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
