package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"brf/config"
	"brf/data"
	"brf/jobs"
	"brf/routes"
	"brf/services"
	"brf/services/logger"
	"brf/store"
)

// buildStore chọn backend cho record store theo cấu hình: Postgres, Redis,
// hoặc file JSON cục bộ khi không có gì được cấu hình.
func buildStore(cfg *config.Config, appLogger logger.Logger) store.Store {
	if cfg.DatabaseURL != "" {
		db, err := config.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		st, err := store.NewGormStore(db, appLogger)
		if err != nil {
			log.Fatalf("Failed to migrate record store: %v", err)
		}
		appLogger.Info("record store backed by Postgres")
		return st
	}

	if cfg.RedisAddr != "" {
		rdb, err := config.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		appLogger.Info("record store backed by Redis at %s", cfg.RedisAddr)
		return store.NewRedisStore(rdb, appLogger)
	}

	appLogger.Info("record store backed by files under %s", cfg.StorageDir)
	return store.NewFileStore(cfg.StorageDir, appLogger)
}

func main() {
	config.LoadEnv()
	cfg := config.Load()

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	st := buildStore(cfg, appLogger)
	rooms := services.NewRoomService(data.Rooms)

	router := config.InitApp()
	routes.SetupRoutes(router, routes.Deps{
		Store:  st,
		Rooms:  rooms,
		Logger: appLogger,
	})

	bookings := services.NewBookingService(services.BookingServiceOptions{
		Store:  st,
		Rooms:  rooms,
		Logger: appLogger,
	})
	c := cron.New()
	if err := jobs.InitCronJobs(c, bookings, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
