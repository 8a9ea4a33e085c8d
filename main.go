package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"study-service/internal/config"
	"study-service/internal/event"
	"study-service/internal/handlers"
	"study-service/internal/provider/factory"
	"study-service/internal/service"
	"study-service/internal/session"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	dataProvider, err := factory.New(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to construct %s data provider: %v", cfg.ProviderBackend, err)
	}
	log.Printf("Using %s data provider", cfg.ProviderBackend)

	// RabbitMQ event publisher
	var publisher *event.Publisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, study events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Services and handlers
	questionService := service.NewQuestionService(dataProvider)
	questionHandler := handlers.NewQuestionHandler(questionService)

	sessionManager := session.NewManager()
	quizService := service.NewQuizService(dataProvider, sessionManager, publisher, cfg.RevealAnswers, cfg.AutosaveEnabled)
	quizHandler := handlers.NewQuizHandler(quizService)

	bookmarkService := service.NewBookmarkService(dataProvider, publisher)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)

	progressService := service.NewProgressService(dataProvider, publisher)
	progressHandler := handlers.NewProgressHandler(progressService)

	directoryService := service.NewDirectoryService(dataProvider)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Public routes - question bank
	publicQuestion := r.Group("/public/study/question")
	{
		publicQuestion.GET("/", questionHandler.ListQuestions)
		publicQuestion.GET("/count", questionHandler.CountQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
	}

	// Public routes - directory
	publicDirectory := r.Group("/public/study/directory")
	{
		publicDirectory.GET("/me", directoryHandler.GetCurrentUser)
		publicDirectory.GET("/users", directoryHandler.GetUsers)
		publicDirectory.GET("/campuses", directoryHandler.GetCampuses)
		publicDirectory.GET("/classes", directoryHandler.GetClasses)
		publicDirectory.GET("/enrollments", directoryHandler.GetEnrollments)
		publicDirectory.GET("/benchmarks", directoryHandler.GetBenchmarks)
	}

	setupQuizRoutes(r, quizHandler)
	setupActivityRoutes(r, bookmarkHandler, progressHandler)

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := dataProvider.Close(closeCtx); err != nil {
			log.Printf("Provider close: %v", err)
		}
	}()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func setupQuizRoutes(r *gin.Engine, quizHandler *handlers.QuizHandler) {
	protectedQuiz := r.Group("/protected/study/quiz")

	protectedQuiz.Use(requireUserID())
	protectedQuiz.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[QUIZ] %v | %3d | %13v | %15s | %-7s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.ErrorMessage,
		)
	}))

	{
		// === ATTEMPT LIFECYCLE ===
		protectedQuiz.POST("/", quizHandler.StartQuiz)
		protectedQuiz.POST("/answer", quizHandler.Answer)
		protectedQuiz.POST("/next", quizHandler.Next)
		protectedQuiz.POST("/previous", quizHandler.Previous)
		protectedQuiz.POST("/complete", quizHandler.Complete)
		protectedQuiz.POST("/reset", quizHandler.Reset)

		// === SAVE AND RESUME ===
		protectedQuiz.POST("/save", quizHandler.SaveAndExit)
		protectedQuiz.POST("/resume", quizHandler.Resume)
		protectedQuiz.GET("/saved", quizHandler.HasSaved)

		// === STATUS ===
		protectedQuiz.GET("/status", quizHandler.Status)
	}
}

func setupActivityRoutes(r *gin.Engine, bookmarkHandler *handlers.BookmarkHandler, progressHandler *handlers.ProgressHandler) {
	protectedActivity := r.Group("/protected/study")
	protectedActivity.Use(requireUserID())

	{
		protectedActivity.GET("/bookmarks", bookmarkHandler.ListBookmarks)
		protectedActivity.GET("/bookmarks/:questionId", bookmarkHandler.CheckBookmark)
		protectedActivity.POST("/bookmarks/toggle", bookmarkHandler.ToggleBookmark)

		protectedActivity.GET("/stats", progressHandler.GetStats)
		protectedActivity.GET("/progress", progressHandler.GetProgress)
		protectedActivity.GET("/responses", progressHandler.GetResponses)
		protectedActivity.GET("/goal", progressHandler.GetDailyGoal)
		protectedActivity.POST("/goal", progressHandler.RecordDailyActivity)
		protectedActivity.GET("/achievements", progressHandler.GetAchievements)
	}
}

// requireUserID guards protected routes: identity arrives as a header set
// by the gateway's auth middleware.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
