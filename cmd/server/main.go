package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	httpAdapter "github.com/muftipurwa/portfolio-api/adapters/http"
	"github.com/muftipurwa/portfolio-api/adapters/persistence"
	portfolioUC "github.com/muftipurwa/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/muftipurwa/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/muftipurwa/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/muftipurwa/portfolio-api/internal/application/usecase/skill"
	"github.com/muftipurwa/portfolio-api/internal/config"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	snapshotCache := persistence.NewRedisSnapshotCache(redisClient, appLogger)

	profileDefaults := profileUC.FallbackDefaults{
		Name:             cfg.ProfileDefaults.Name,
		Greeting:         cfg.ProfileDefaults.Greeting,
		Email:            cfg.ProfileDefaults.Email,
		LinkedinURL:      cfg.ProfileDefaults.LinkedinURL,
		WhatsappNumber:   cfg.ProfileDefaults.WhatsappNumber,
		AboutDescription: cfg.ProfileDefaults.AboutDescription,
	}

	// Use Cases
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo)
	updateProfileUseCase := profileUC.NewUpdateProfileUseCase(profileRepo, profileDefaults, kafkaClient, appLogger)
	createSkillUseCase := skillUC.NewCreateSkillUseCase(skillRepo, kafkaClient, appLogger)
	listSkillsUseCase := skillUC.NewListSkillsUseCase(skillRepo)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, kafkaClient, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, kafkaClient, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, kafkaClient, appLogger)
	getPortfolioUseCase := portfolioUC.NewGetPortfolioUseCase(snapshotCache, profileRepo, skillRepo, projectRepo, appLogger)

	// HTTP Handlers
	profileHandler := httpAdapter.NewProfileHandler(getProfileUseCase, updateProfileUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(createSkillUseCase, listSkillsUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		listProjectsUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		appLogger,
	)
	portfolioHandler := httpAdapter.NewPortfolioHandler(getPortfolioUseCase, appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.CORSMiddleware())
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/portfolio", portfolioHandler.GetPortfolio)

		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)

		api.GET("/skills", skillHandler.ListSkills)
		api.POST("/skills", skillHandler.CreateSkill)

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
