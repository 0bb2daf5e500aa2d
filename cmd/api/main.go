package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/repository/postgres"
	"github.com/iamasit07/connect4-engine/internal/repository/redis"
	"github.com/iamasit07/connect4-engine/internal/service/analysis"
	"github.com/iamasit07/connect4-engine/internal/service/cleanup"
	transportHttp "github.com/iamasit07/connect4-engine/internal/transport/http"
	"github.com/iamasit07/connect4-engine/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-engine/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 1. Analysis log (optional)
	var repo analysis.Repository
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = postgres.Open(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		log.Println("Running database migrations...")
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

		analysisRepo := postgres.NewAnalysisRepo(db)
		repo = analysisRepo
		cleanup.NewWorker(analysisRepo, cfg.RetentionDays).Start(ctx)
	} else {
		log.Println("DATABASE_URL not set, analysis log disabled")
	}

	// 2. Result cache (optional)
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache analysis.ResultCache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewMoveCache(redis.RedisClient)
	}

	// 3. Services
	analysisService := analysis.NewService(analysis.Settings{
		Search:    cfg.Search,
		MaxDepth:  cfg.MaxRequestDepth,
		BoardSize: cfg.BoardSize,
		CacheTTL:  cfg.CacheTTL,
	}, cache, repo)

	log.Printf("[BOT] depth=%d pruning=%t ordering=%t board=%d",
		cfg.Search.MaxDepth, cfg.Search.Pruning, cfg.Search.Ordering, cfg.BoardSize)

	// 4. Router
	analysisHandler := transportHttp.NewAnalysisHandler(analysisService)
	wsHandler := websocket.NewHandler(analysisService, cfg.AllowedOrigins)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	analysisHandler.RegisterRoutes(router)
	router.GET("/ws/analyze", gin.WrapF(wsHandler.HandleWebSocket))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
