// Package api exposes the scan engine as an asynchronous REST service.
package api

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "portscope/docs"
	"portscope/logging"
)

// Run initializes dependencies and starts the API server.
func Run() error {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	logger := logging.Configure()

	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", redisAddr, err)
	}

	store := NewRedisStore(redisClient)

	numWorkers := 5
	if raw := os.Getenv("PORTSCOPE_WORKERS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			numWorkers = v
		}
	}
	StartWorkers(store, numWorkers)

	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(logger))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := NewServer(store)
	routes := gin.IRoutes(router)
	if apiKey := os.Getenv("PORTSCOPE_API_KEY"); apiKey != "" {
		routes = router.Group("/", AuthMiddleware(apiKey, logger))
	}
	server.RegisterRoutes(routes)

	addr := getenv("PORTSCOPE_ADDR", ":8080")
	logger.Info("starting portscope API server", "addr", addr, "workers", numWorkers)
	return router.Run(addr)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
