package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizsheet/internal/adapter"
	"quizsheet/internal/bank"
	"quizsheet/internal/cache"
	"quizsheet/internal/config"
	"quizsheet/internal/database"
	"quizsheet/internal/handler"
	"quizsheet/internal/logger"
	"quizsheet/internal/middleware"
	"quizsheet/internal/repository"
	"quizsheet/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Load the question bank once at startup; every attempt samples from it.
	questionBank, err := bank.Load(cfg.Quiz.FilePath)
	if err != nil {
		appLogger.Fatal("Failed to load question bank",
			zap.String("path", cfg.Quiz.FilePath),
			zap.Error(err),
		)
	}
	appLogger.Info("Question bank loaded",
		zap.String("path", cfg.Quiz.FilePath),
		zap.Int("questions", questionBank.Size()),
	)

	db, err := database.NewSQLXSQLiteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepository := repository.NewSQLXUserRepository(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	sessionStore := service.NewSessionStore(cacheAdapter, cfg.Quiz.SessionTTL)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	quizService := service.NewQuizService(questionBank, sessionStore, cfg.Quiz.SampleSize)

	quizHandler := handler.NewQuizHandler(quizService)
	authHandler := handler.NewAuthHandler(authService, quizService, cfg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// Quiz routes (all protected)
	quizGroup := apiGroup.Group("/quiz", middleware.Protected(authService))
	quizGroup.Get("/", quizHandler.GetQuestion)
	quizGroup.Post("/answer", quizHandler.SubmitAnswer)
	quizGroup.Get("/results", quizHandler.GetResults)
	quizGroup.Get("/export", quizHandler.ExportResults)
	quizGroup.Get("/review/:index", quizHandler.ReviewQuestion)
	quizGroup.Post("/reset", quizHandler.ResetQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
