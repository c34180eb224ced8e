package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SaiVignesh27/unified-platform/internal/config"
	"github.com/SaiVignesh27/unified-platform/internal/database"
	"github.com/SaiVignesh27/unified-platform/internal/handlers"
	"github.com/SaiVignesh27/unified-platform/internal/logger"
	"github.com/SaiVignesh27/unified-platform/internal/middleware"
	"github.com/SaiVignesh27/unified-platform/internal/security"
	"github.com/SaiVignesh27/unified-platform/internal/services"
	"github.com/SaiVignesh27/unified-platform/internal/store/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLogger := logger.New(logger.Config{Level: slog.LevelInfo, Format: cfg.LogFormat})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	freelancerStore := postgres.NewFreelancerStore(db)
	recruiterStore := postgres.NewRecruiterStore(db)
	jobStore := postgres.NewJobStore(db)
	applicationStore := postgres.NewApplicationStore(db)

	tokens := security.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)

	lifecycleService := services.NewLifecycleService(jobStore, applicationStore, recruiterStore, freelancerStore, appLogger)
	dashboardService := services.NewDashboardService(jobStore, applicationStore, recruiterStore)
	authService := services.NewAuthService(freelancerStore, recruiterStore, tokens)
	freelancerService := services.NewFreelancerService(freelancerStore, applicationStore, jobStore)
	recruiterService := services.NewRecruiterService(recruiterStore)
	matcherService := services.NewMatcherService(jobStore, freelancerStore)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	handlers.SetupRoutes(r, handlers.RouterDeps{
		Auth:       handlers.NewAuthHandler(authService, freelancerService, recruiterService),
		Jobs:       handlers.NewJobHandler(lifecycleService, dashboardService),
		Freelancer: handlers.NewFreelancerHandler(freelancerService, lifecycleService, matcherService),
		Recruiter:  handlers.NewRecruiterHandler(recruiterService, dashboardService),
		AuthMW:     middleware.NewAuth(tokens),
	})

	appLogger.Info("server starting", "port", cfg.HTTPPort)
	if err := r.Run(cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
