package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/database"
	"github.com/centsible/centsible/internal/handlers"
	"github.com/centsible/centsible/internal/middleware"
	"github.com/centsible/centsible/internal/repository"
	"github.com/centsible/centsible/internal/services"

	_ "github.com/centsible/centsible/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Centsible API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	piggybankRepo := repository.NewPiggybankRepository(db)

	authService := services.NewAuthService(userRepo, db, cfg.JWT.Secret, cfg.JWT.TTL)
	transactionService := services.NewTransactionService(transactionRepo)
	piggybankService := services.NewPiggybankService(piggybankRepo, db)
	analyticsService := services.NewAnalyticsService(transactionRepo)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	adminMiddleware := middleware.NewAdminMiddleware(userRepo, cfg.Admins)

	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	piggybankHandler := handlers.NewPiggybankHandler(piggybankService)
	dashboardHandler := handlers.NewDashboardHandler(analyticsService)
	adminHandler := handlers.NewAdminHandler(userRepo, transactionRepo)

	router := gin.Default()

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("centsible_session", store))

	router.GET("/docs", handlers.SwaggerUI())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.POST("/auth/logout", authHandler.Logout)
			authenticated.DELETE("/auth/account", authHandler.DeleteAccount)

			authenticated.GET("/transactions", transactionHandler.List)
			authenticated.POST("/transactions", transactionHandler.Create)
			authenticated.GET("/transactions/:id", transactionHandler.Get)
			authenticated.PUT("/transactions/:id", transactionHandler.Update)
			authenticated.DELETE("/transactions/:id", transactionHandler.Delete)

			authenticated.GET("/dashboard/stats", dashboardHandler.Stats)
			authenticated.GET("/dashboard/charts", dashboardHandler.Charts)

			authenticated.GET("/piggybanks", piggybankHandler.List)
			authenticated.POST("/piggybanks", piggybankHandler.Create)
			authenticated.PUT("/piggybanks/:id", piggybankHandler.Update)
			authenticated.DELETE("/piggybanks/:id", piggybankHandler.Delete)
		}

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(adminMiddleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/transactions", adminHandler.ListAllTransactions)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Centsible server on %s", addr)
	return router.Run(addr)
}
