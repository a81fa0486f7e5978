package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ChesterTeam/UniMarket/internal/config"
	"github.com/ChesterTeam/UniMarket/internal/handler"
	"github.com/ChesterTeam/UniMarket/internal/middleware"
	"github.com/ChesterTeam/UniMarket/internal/repository"
	"github.com/ChesterTeam/UniMarket/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("JWT_SECRET not set, using the development default")
	}

	db, err := repository.Open(cfg.DatabaseURL, cfg.SQLitePath, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if cfg.Seed {
		if err := repository.Seed(ctx, db, logger); err != nil {
			logger.Fatal("seed data", zap.Error(err))
		}
	}

	listingRepo := repository.NewListingRepository(db)
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	if cfg.ImportFile != "" {
		f, err := os.Open(cfg.ImportFile)
		if err != nil {
			logger.Fatal("open import file", zap.Error(err))
		}
		res, err := listingRepo.Import(ctx, f)
		f.Close()
		if err != nil {
			logger.Fatal("import listings", zap.Error(err))
		}
		logger.Info("imported listings",
			zap.Int("imported", res.Imported),
			zap.Int("skipped", len(res.Skipped)))
		for _, s := range res.Skipped {
			logger.Warn("import skipped record", zap.String("reason", s))
		}
	}

	catalogSvc := service.NewCatalogService(listingRepo, userRepo)
	authSvc := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	chatSvc := service.NewChatService(messageRepo, listingRepo, userRepo, cfg.SimulateChat)
	reviewSvc := service.NewReviewService(reviewRepo, listingRepo, userRepo)

	listingHandler := &handler.ListingHandler{Catalog: catalogSvc, Log: logger}
	userHandler := &handler.UserHandler{Auth: authSvc, Log: logger}
	messageHandler := &handler.MessageHandler{Chat: chatSvc, Log: logger}
	reviewHandler := &handler.ReviewHandler{Reviews: reviewSvc, Log: logger}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuth([]byte(cfg.JWTSecret)))

	listingHandler.RegisterRoutes(api, protected)
	userHandler.RegisterRoutes(api, protected)
	messageHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(api, protected)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
