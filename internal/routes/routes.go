// Package routes defines the API routing configuration: which handler serves
// each path and which permission gate runs ahead of it.
package routes

import (
	"log"

	"riskdesk/internal/config"
	"riskdesk/internal/handlers"
	"riskdesk/internal/middleware"
	"riskdesk/internal/models"
	"riskdesk/internal/repositories"
	"riskdesk/internal/repositories/cache"
	"riskdesk/internal/services/auth"
	"riskdesk/internal/services/notification"
	"riskdesk/internal/services/risk"
	"riskdesk/internal/services/session"
	"riskdesk/internal/services/ticketing"
	"riskdesk/internal/services/transactions"

	"github.com/gofiber/fiber/v2"
)

// Dependencies carries the wiring decided in main: which data source backs
// the repositories and whether Redis is available.
type Dependencies struct {
	UserRepo     repositories.UserRepository
	TxRepo       repositories.TransactionRepository
	CacheService *cache.CacheService // nil when Redis is not configured
}

// SetupRoutes builds the services and registers every route.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	jwtSecret := config.GetEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		if config.IsProduction() {
			log.Fatal("JWT_SECRET is required in production")
		}
		jwtSecret = "riskdesk-dev-secret"
	}

	var sessions session.Store
	if deps.CacheService != nil {
		sessions = session.NewRedisStore(deps.CacheService)
	} else {
		sessions = session.NewMemoryStore()
	}

	notifier := notification.NewLogNotifier()

	authService := auth.NewService(sessions, jwtSecret)
	riskService := risk.NewService(deps.UserRepo)
	txService := transactions.NewService(deps.TxRepo)

	gateway := ticketing.NewGateway(notifier, deps.CacheService)
	gateway.Configure(
		config.GetEnv("TICKETING_DOMAIN", ""),
		config.GetEnv("TICKETING_API_KEY", ""),
	)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(deps.UserRepo, deps.TxRepo)
	riskHandler := handlers.NewRiskHandler(riskService)
	txHandler := handlers.NewTransactionHandler(txService)
	ticketHandler := handlers.NewTicketHandler(gateway)

	authMiddleware := middleware.NewAuthMiddleware(sessions, jwtSecret)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")
	api.Post("/login", authHandler.Login)

	// Everything below requires a valid session token.
	api.Use(authMiddleware.Handler)
	api.Post("/logout", authHandler.Logout)
	api.Get("/me", authHandler.Me)

	users := api.Group("/users", middleware.RequirePermission(models.PermissionViewUsers))
	users.Get("/", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)

	riskGroup := api.Group("/risk", middleware.RequirePermission(models.PermissionViewRiskMetrics))
	riskGroup.Get("/metrics", riskHandler.GetMetrics)
	riskGroup.Get("/distribution", riskHandler.GetDistribution)
	riskGroup.Get("/services", riskHandler.GetServiceMetrics)
	riskGroup.Get("/service-usage", riskHandler.GetServiceUsage)

	txGroup := api.Group("/transactions", middleware.RequirePermission(models.PermissionViewTransactions))
	txGroup.Get("/", txHandler.ListTransactions)
	txGroup.Get("/summary", txHandler.GetSummary)

	tickets := api.Group("/tickets", middleware.RequirePermission(models.PermissionViewTickets))
	tickets.Get("/", ticketHandler.ListTickets)
	tickets.Get("/agents", ticketHandler.ListAgents)
	tickets.Get("/groups", ticketHandler.ListGroups)
	tickets.Get("/:id", ticketHandler.GetTicket)
	tickets.Put("/:id/status", middleware.RequirePermission(models.PermissionManageTickets), ticketHandler.UpdateStatus)
	tickets.Post("/:id/notes", middleware.RequirePermission(models.PermissionManageTickets), ticketHandler.AddNote)
	tickets.Post("/config", middleware.RequirePermission(models.PermissionManageSystem), ticketHandler.Configure)
}
