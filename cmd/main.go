package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/falconakhil/CompeteHub/config"
	"github.com/falconakhil/CompeteHub/database"
	_ "github.com/falconakhil/CompeteHub/docs" // Swagger docs - auto-generated
	"github.com/falconakhil/CompeteHub/internal/controller"
	"github.com/falconakhil/CompeteHub/internal/logger"
	"github.com/falconakhil/CompeteHub/internal/middleware"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/falconakhil/CompeteHub/internal/repository"
	"github.com/falconakhil/CompeteHub/internal/service"
)

// @title CompeteHub API
// @version 1.0
// @description Programming contest platform with problem banks, timed contests and automated judging.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedisClient,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewGenreRepository,
			repository.NewProblemRepository,
			repository.NewContestRepository,
			repository.NewContestProblemRepository,
			repository.NewParticipationRepository,
			repository.NewSubmissionRepository,
		),

		// Services
		fx.Provide(
			service.NewTokenService,
			service.NewAccountService,
			service.NewGeminiLLMService,
			service.NewScoringService,
			service.NewProblemService,
			service.NewContestService,
			service.NewRegistrationService,
			service.NewContestProblemService,
			service.NewLeaderboardService,
			service.NewSubmissionService,
		),

		// Controllers
		fx.Provide(
			controller.NewAuthController,
			controller.NewProblemController,
			controller.NewContestController,
			controller.NewLeaderboardController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *controller.AuthController,
	problemCtrl *controller.ProblemController,
	contestCtrl *controller.ContestController,
	leaderboardCtrl *controller.LeaderboardController,
) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authCtrl.Signup)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/login/refresh", authCtrl.Refresh)
	}

	authenticated := api.Group("")
	authenticated.Use(middleware.RequireAuth(tokens))
	{
		authenticated.GET("/auth/profile", authCtrl.Profile)
		authenticated.POST("/auth/delete", authCtrl.Delete)

		problems := authenticated.Group("/problems")
		{
			problems.POST("", problemCtrl.Create)
			problems.GET("", problemCtrl.List)
			problems.POST("/:id/submissions", problemCtrl.SubmitDirect)
			problems.GET("/:id/submissions", problemCtrl.ListSubmissions)
		}

		contests := authenticated.Group("/contests")
		{
			contests.POST("", contestCtrl.Create)
			contests.GET("/list/future", contestCtrl.ListFuture)
			contests.GET("/list/active", contestCtrl.ListActive)
			contests.GET("/list/completed", contestCtrl.ListCompleted)
			contests.GET("/:id", contestCtrl.Detail)
			contests.DELETE("/:id", contestCtrl.Delete)
			contests.POST("/:id/register", contestCtrl.Register)
			contests.DELETE("/:id/register", contestCtrl.Unregister)
			contests.GET("/:id/problems", contestCtrl.ListProblems)
			contests.POST("/:id/problems", contestCtrl.AddProblems)
			contests.DELETE("/:id/problems/:problem_id", contestCtrl.RemoveProblem)
			contests.GET("/:id/problems/order/:order", contestCtrl.GetProblemByOrder)
			contests.POST("/:id/problems/order/:order/submit", contestCtrl.Submit)
			contests.GET("/:id/leaderboard", leaderboardCtrl.Top)
			contests.GET("/:id/leaderboard/rank", leaderboardCtrl.Rank)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CompeteHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Genre{},
		&model.Problem{},
		&model.Contest{},
		&model.ContestProblem{},
		&model.Participation{},
		&model.Submission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
