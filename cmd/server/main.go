// Package main is the entry point for the risk operations API. It wires the
// data source (seeded in-memory by default, Postgres when enabled), the
// optional Redis cache, and the HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"riskdesk/internal/config"
	"riskdesk/internal/repositories"
	"riskdesk/internal/repositories/cache"
	"riskdesk/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	// Optional Redis: backs the session store and the collection caches.
	var cacheService *cache.CacheService
	if config.GetBoolEnv("REDIS_ENABLED", false) {
		redisClient := cache.NewRedisClient(&cache.RedisConfig{
			Host:     config.GetEnv("REDIS_HOST", "localhost"),
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		cacheService = cache.NewCacheService(redisClient, 5*time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, continuing without cache: %v", err)
			cacheService = nil
		} else if config.GetBoolEnv("REDIS_FLUSH_ON_START", false) {
			// Drop stale collection caches from a previous run. Sessions are
			// re-established from the token's embedded identity.
			if err := cacheService.FlushAll(ctx); err != nil {
				log.Printf("failed to flush redis: %v", err)
			}
		}
		cancel()
		defer func() {
			if cacheService != nil {
				if err := cacheService.Close(); err != nil {
					log.Printf("failed to close redis connection: %v", err)
				}
			}
		}()
	}

	// Data source: Postgres when enabled, otherwise the seeded mock store
	// with simulated remote latency.
	var userRepo repositories.UserRepository
	var txRepo repositories.TransactionRepository
	if config.GetBoolEnv("DB_ENABLED", false) {
		db, err := repositories.InitDB()
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		userRepo = repositories.NewGormUserRepository(db, cacheService)
		txRepo = repositories.NewGormTransactionRepository(db, cacheService)
		log.Println("serving data from Postgres")
	} else {
		store := repositories.NewMockStore(
			int64(config.GetIntEnv("MOCK_SEED", 42)),
			config.GetIntEnv("MOCK_USERS", 250),
			config.GetIntEnv("MOCK_TRANSACTIONS", 2000),
			config.GetDurationEnv("MOCK_LATENCY", 300*time.Millisecond),
		)
		userRepo = store
		txRepo = store.Transactions()
		log.Println("serving generated demo data")
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		UserRepo:     userRepo,
		TxRepo:       txRepo,
		CacheService: cacheService,
	})

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
