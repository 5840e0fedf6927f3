package app

import (
	"interview_warmup_backend/docs"
	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/middleware"
	"interview_warmup_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	// 公共路由（无需登录）
	api := router.Group("/api")
	{
		api.POST("/auth/login", c.auth.Login)

		// 练习主链路，历史客户端不带令牌访问
		api.GET("/questions", c.question.GetQuestions)
		api.GET("/positions", c.question.GetPositions)
		api.POST("/transcribe", c.transcribe.Transcribe)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/auth/logout", c.auth.Logout)
		authGroup.GET("/user/profile", c.auth.Profile)
	}
}
