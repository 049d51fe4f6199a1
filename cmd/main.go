package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adislens/medpgprep/config"
	"github.com/adislens/medpgprep/database"
	_ "github.com/adislens/medpgprep/docs" // Swagger docs - auto-generated
	"github.com/adislens/medpgprep/internal/controller"
	adminctrl "github.com/adislens/medpgprep/internal/controller/admin"
	"github.com/adislens/medpgprep/internal/logger"
	"github.com/adislens/medpgprep/internal/middleware"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/adislens/medpgprep/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title MedPG Prep API
// @version 1.0
// @description Mock-examination platform for medical PG entrance preparation: timed subject tests, result analytics and a discussion forum with voting and points.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewPostRepository,
			repository.NewReplyRepository,
			repository.NewVoteRepository,
			repository.NewPointsRepository,
			repository.NewProfileRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewSessionService,
			service.NewResultService,
			service.NewAnalyticsService,
			service.NewPointsService,
			service.NewVoteService,
			service.NewPostService,
			service.NewReplyService,
			service.NewProfileService,
			service.NewAuthService,
			service.NewAccountService,
			service.NewAdminQuestionService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewSessionController,
			controller.NewForumController,
			controller.NewProfileController,
			adminctrl.NewAdminQuestionController,
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
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
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
	authCtrl *controller.AuthController,
	sessionCtrl *controller.SessionController,
	forumCtrl *controller.ForumController,
	profileCtrl *controller.ProfileController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		questionsAdminGroup := adminAPIGroup.Group("/questions")
		questionsAdminGroup.POST("", adminQuestionCtrl.CreateQuestion)
		questionsAdminGroup.POST("/import", adminQuestionCtrl.ImportQuestions)
		questionsAdminGroup.GET("/subjects", adminQuestionCtrl.ListSubjects)
	}

	// Public auth routes
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	// Authenticated user routes
	userAPIGroup := router.Group("/api/v1")
	userAPIGroup.Use(middleware.Auth(cfg))
	{
		userAPIGroup.GET("/auth/me", authCtrl.Me)
		userAPIGroup.DELETE("/account", authCtrl.DeleteAccount)

		// Test sessions
		userAPIGroup.POST("/sessions", sessionCtrl.StartSession)
		userAPIGroup.GET("/sessions/:session_id", sessionCtrl.GetSession)
		userAPIGroup.POST("/sessions/:session_id/answers", sessionCtrl.SelectAnswer)
		userAPIGroup.POST("/sessions/:session_id/next", sessionCtrl.NextQuestion)
		userAPIGroup.POST("/sessions/:session_id/previous", sessionCtrl.PreviousQuestion)
		userAPIGroup.POST("/sessions/:session_id/jump", sessionCtrl.JumpToQuestion)
		userAPIGroup.POST("/sessions/:session_id/submit", sessionCtrl.SubmitSession)
		userAPIGroup.GET("/results", sessionCtrl.ResultHistory)

		// Analytics
		userAPIGroup.GET("/analytics/subjects", profileCtrl.SubjectStats)
		userAPIGroup.GET("/analytics/summary", profileCtrl.OverallStats)

		// Forum
		userAPIGroup.GET("/posts", forumCtrl.ListPosts)
		userAPIGroup.POST("/posts", forumCtrl.CreatePost)
		userAPIGroup.GET("/posts/:post_id", forumCtrl.GetPost)
		userAPIGroup.DELETE("/posts/:post_id", forumCtrl.DeletePost)
		userAPIGroup.POST("/posts/:post_id/votes", forumCtrl.VotePost)
		userAPIGroup.GET("/posts/:post_id/replies", forumCtrl.ListReplies)
		userAPIGroup.POST("/posts/:post_id/replies", forumCtrl.CreateReply)
		userAPIGroup.GET("/points", forumCtrl.GetPoints)

		// Profile
		userAPIGroup.GET("/profile", profileCtrl.GetProfile)
		userAPIGroup.PUT("/profile", profileCtrl.UpdateProfile)
		userAPIGroup.PUT("/profile/display-name", profileCtrl.UpdateDisplayName)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("MedPG Prep API server starting on port %s", cfg.Server.Port)
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
		&model.Profile{},
		&model.Question{},
		&model.TestResult{},
		&model.Post{},
		&model.Reply{},
		&model.Vote{},
		&model.UserPoints{},
		&model.PointGrant{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
