package main

import (
	"os"

	"records-api/internal/handlers"
	"records-api/internal/logging"
	"records-api/internal/middleware"
	"records-api/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Initialize logging first
	logConfig := logging.NewLogConfigFromEnv()
	logging.InitLogger(logConfig)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var store storage.ItemStore
	if os.Getenv("STORAGE_DRIVER") == "sqlite" {
		// SQLite ":memory:" keeps the same process-lifetime semantics as
		// the slice store; nothing survives a restart.
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			logging.Logger.Fatalf("Failed to open database: %v", err)
		}
		store, err = storage.NewGormItemStorage(db)
		if err != nil {
			logging.Logger.Fatalf("Failed to initialize storage: %v", err)
		}
		logging.Logger.Info("Using SQLite in-memory storage")
	} else {
		store = storage.NewItemStorage()
		logging.Logger.Info("Using in-memory storage")
	}

	itemHandler := handlers.NewItemHandler(store)

	// Set up Gin router (without default logger since we'll use our own)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestID())

	corsConfig := middleware.NewCORSConfigFromEnv()
	router.Use(middleware.CORS(corsConfig))

	securityConfig := middleware.NewSecurityConfigFromEnv()
	router.Use(middleware.RequestSizeLimit(securityConfig.MaxRequestBodySize))

	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorSanitizer())

	rateLimitConfig := middleware.NewRateLimitConfigFromEnv()
	router.Use(middleware.GlobalRateLimiter(rateLimitConfig))

	router.GET("/", itemHandler.Root)
	router.POST("/items", itemHandler.CreateItem)
	router.GET("/items", itemHandler.ListItems)
	router.GET("/items/:itemId", itemHandler.GetItem)

	logging.Logger.Infof("Starting item service on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		logging.Logger.Fatalf("Failed to start server: %v", err)
	}
}
