package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/middleware"
)

// NewRouter настраивает маршруты API.
// apiMiddleware применяется ко всей группе /api (например, ограничение частоты запросов).
func NewRouter(
	categoryHandler *CategoryHandler,
	questionHandler *QuestionHandler,
	quizHandler *QuizHandler,
	apiMiddleware ...gin.HandlerFunc,
) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(middleware.CORSHeaders())
	router.Use(middleware.CORS())

	router.NoRoute(func(c *gin.Context) {
		abortWithMessage(c, http.StatusNotFound, msgNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		abortWithMessage(c, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	api := router.Group("/api")
	api.Use(apiMiddleware...)
	{
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id/questions",
				middleware.ExtractUintParam("id", CategoryIDKey),
				categoryHandler.GetCategoryQuestions)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.GetQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.POST("/search", questionHandler.SearchQuestions)
			questions.DELETE("/:id",
				middleware.ExtractUintParam("id", QuestionIDKey),
				questionHandler.DeleteQuestion)
		}

		api.POST("/quizzes", quizHandler.NextQuestion)
	}

	return router
}
