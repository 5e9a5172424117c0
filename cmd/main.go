package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/config"
	"github.com/saqh5037/quizApp-sub002/database"
	adminctrl "github.com/saqh5037/quizApp-sub002/internal/controller/admin"
	userctrl "github.com/saqh5037/quizApp-sub002/internal/controller/user"
	"github.com/saqh5037/quizApp-sub002/internal/livestate"
	"github.com/saqh5037/quizApp-sub002/internal/logger"
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"github.com/saqh5037/quizApp-sub002/internal/repository"
	"github.com/saqh5037/quizApp-sub002/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title AristoTest API
// @version 1.0
// @description Live quiz platform: admins author quizzes, hosts run sessions by code, participants answer in real time and are scored with a speed bonus.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,    // Provides *gorm.DB
			database.NewRedisClient, // Provides *redis.Client
			livestate.NewStore,
			NewGinEngine, // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewSessionRepository,
			repository.NewParticipantRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAdminQuizService,
			service.NewUserQuizService,
			service.NewQuestionGeneratorService,
			service.NewSessionService,
			service.NewSubmissionService,
			service.NewResultsService,
			service.NewCertificateService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminQuizController,
			adminctrl.NewAdminSessionController,
			userctrl.NewUserQuizController,
			userctrl.NewUserSessionController,
		),

		// Invokers
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
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route gin's access log through zerolog.
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
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
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
	adminQuizCtrl *adminctrl.AdminQuizController,
	adminSessionCtrl *adminctrl.AdminSessionController,
	userQuizCtrl *userctrl.UserQuizController,
	userSessionCtrl *userctrl.UserSessionController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		quizzesGroup := adminAPIGroup.Group("/quizzes")
		quizzesGroup.POST("", adminQuizCtrl.CreateQuiz)
		quizzesGroup.POST("/generate", adminQuizCtrl.GenerateQuestions)
		quizzesGroup.PUT("/:quiz_id", adminQuizCtrl.UpdateQuiz)
		quizzesGroup.DELETE("/:quiz_id", adminQuizCtrl.DeleteQuiz)
		quizzesGroup.POST("/:quiz_id/questions", adminQuizCtrl.AddQuestion)
		quizzesGroup.PUT("/:quiz_id/questions/:question_id", adminQuizCtrl.UpdateQuestion)
		quizzesGroup.DELETE("/:quiz_id/questions/:question_id", adminQuizCtrl.DeleteQuestion)

		sessionsGroup := adminAPIGroup.Group("/sessions")
		sessionsGroup.POST("", adminSessionCtrl.CreateSession)
		sessionsGroup.POST("/:code/start", adminSessionCtrl.StartSession)
		sessionsGroup.POST("/:code/pause", adminSessionCtrl.PauseSession)
		sessionsGroup.POST("/:code/resume", adminSessionCtrl.ResumeSession)
		sessionsGroup.POST("/:code/next", adminSessionCtrl.NextQuestion)
		sessionsGroup.POST("/:code/complete", adminSessionCtrl.CompleteSession)
	}

	// User routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/quizzes", userQuizCtrl.GetAllQuizzes)
		userAPIGroup.GET("/quizzes/:quiz_id", userQuizCtrl.GetQuizDetails)

		userAPIGroup.POST("/sessions/:code/join", userSessionCtrl.JoinSession)
		userAPIGroup.POST("/sessions/:code/answers", userSessionCtrl.SubmitAnswer)
		userAPIGroup.GET("/sessions/:code/state", userSessionCtrl.GetSessionState)
		userAPIGroup.GET("/sessions/:code/results", userSessionCtrl.GetSessionResults)
		userAPIGroup.GET("/sessions/:code/participants/:participant_id/certificate", userSessionCtrl.DownloadCertificate)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("AristoTest API server starting on port %s", cfg.Server.Port)
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
		&model.Quiz{},
		&model.Question{},
		&model.QuizSession{},
		&model.Participant{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
