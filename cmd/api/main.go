package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"windowupgrades/internal/config"
	"windowupgrades/internal/database"
	"windowupgrades/internal/middleware"
	"windowupgrades/internal/modules/admin"
	"windowupgrades/internal/modules/dashboard"
	"windowupgrades/internal/modules/inbox"
	"windowupgrades/internal/modules/intake"
	"windowupgrades/internal/modules/reports"
	"windowupgrades/internal/monitoring"
	"windowupgrades/internal/notification"
	"windowupgrades/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	leadRepo := repository.NewLeadRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	var notifier notification.Sender
	if cfg.SendGridAPIKey != "" {
		notifier = notification.NewSendGridSender(notification.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
	} else {
		notifier = notification.NewLogSender(logger)
	}

	intakeService := intake.NewService(leadRepo, quoteRepo, notifier, cfg.NotifyEmail, logger)
	intakeHandler := intake.NewHandler(intakeService)

	adminService := admin.NewService(leadRepo, quoteRepo, orderRepo, projectRepo)
	adminHandler := admin.NewHandler(adminService)

	inboxService := inbox.NewService(messageRepo)
	inboxHandler := inbox.NewHandler(inboxService)

	dashboardService := dashboard.NewService(leadRepo, quoteRepo, orderRepo, projectRepo, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	reportsService := reports.NewService(leadRepo, quoteRepo, orderRepo)
	reportsHandler := reports.NewHandler(reportsService)

	monitoring.Init()

	r := gin.Default()
	r.Use(middleware.PrometheusMetrics())
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	v1 := r.Group("/api/v1")
	{
		// public intake
		intakeHandler.RegisterRoutes(v1)

		// admin console, staff tokens only
		protected := v1.Group("/admin")
		protected.Use(middleware.StaffAuth(cfg.JWTSecret))
		{
			adminHandler.RegisterRoutes(protected)
			inboxHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			reportsHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
