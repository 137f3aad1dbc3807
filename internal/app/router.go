package app

import (
	"physics_practice_backend/docs"
	"physics_practice_backend/internal/middleware"
	"physics_practice_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	// 1. 题库管理
	a.registerQuestionRoutes(api, c)

	// 2. 学生练习，需要网关写入学生标识
	a.registerExerciseRoutes(api, c)
}

func (a *App) registerQuestionRoutes(api *gin.RouterGroup, c *controllers) {
	questions := api.Group("/questions")
	{
		questions.POST("", c.questionBank.CreateQuestion)
		questions.GET("", c.questionBank.ListQuestions)
		questions.GET("/random", c.questionBank.RandomQuestions)
		questions.GET("/chapters", c.questionBank.ListChapters)
		questions.GET("/imports", c.questionBank.ListImports)
		questions.POST("/import", c.questionBank.ImportDocx)
		questions.GET("/:id", c.questionBank.GetQuestion)
		questions.PUT("/:id", c.questionBank.UpdateQuestion)
		questions.DELETE("/:id", c.questionBank.DeleteQuestion)
	}
}

func (a *App) registerExerciseRoutes(api *gin.RouterGroup, c *controllers) {
	exercise := api.Group("/exercise")
	exercise.Use(middleware.StudentMiddleware())
	{
		exercise.POST("/start", c.exercise.StartExercise)
		exercise.POST("/submit", c.exercise.SubmitAnswer)
		exercise.GET("/stats", c.exercise.GetStats)
		exercise.GET("/wrong-questions", c.exercise.GetWrongQuestions)
		exercise.POST("/wrong-questions/:questionId/resolved", c.exercise.MarkResolved)
	}
}
