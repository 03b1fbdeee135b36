package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/events"
	"github.com/yourusername/trivia-bank/internal/handler"
	"github.com/yourusername/trivia-bank/internal/middleware"
	"github.com/yourusername/trivia-bank/internal/repository/gormrepo"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	isProduction := os.Getenv("GIN_MODE") == "release"
	logLevel := logger.Info
	if isProduction {
		logLevel = logger.Warn
	}

	// Подключаемся к базе и применяем миграции (схема + начальные данные)
	db, err := database.OpenAndMigrate(cfg.Database, logLevel)
	if err != nil {
		log.Printf("Failed to initialize database: %v", err)
		os.Exit(1)
	}

	// Публикация событий о вопросах
	publisher, err := events.NewPublisher(cfg.Events)
	if err != nil {
		log.Printf("Failed to create event publisher: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	categoryRepo := gormrepo.NewCategoryRepo(db)
	questionRepo := gormrepo.NewQuestionRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, questionRepo)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, publisher)
	quizService := service.NewQuizService(categoryRepo, questionRepo, nil)

	// Ограничение частоты запросов включается только при наличии Redis
	var apiMiddleware []gin.HandlerFunc
	if cfg.Redis.Enabled {
		redisClient, err := database.NewUniversalRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Println("Successfully connected to Redis")

		limiter := middleware.NewRateLimiter(redisClient, "api", cfg.RateLimit)
		apiMiddleware = append(apiMiddleware, limiter.Middleware())
	}

	router := handler.NewRouter(
		handler.NewCategoryHandler(categoryService),
		handler.NewQuestionHandler(questionService),
		handler.NewQuizHandler(quizService),
		apiMiddleware...,
	)

	// В production не доверяем прокси-заголовкам, в development доверяем localhost
	trustedProxies := []string{"127.0.0.1", "::1"}
	if isProduction {
		trustedProxies = nil
	}
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Printf("Error closing event publisher: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited properly")
}
