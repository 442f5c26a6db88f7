package app

import (
	"habit_tracker_backend/docs"
	"habit_tracker_backend/internal/config"
	"habit_tracker_backend/internal/middleware"
	"habit_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/logout", c.auth.Logout)
		public.GET("/motivation", c.motivation.GetCurrentMotivation)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/password", c.user.ChangePassword)

		authGroup.POST("/logs", c.log.SaveLog)
		authGroup.GET("/logs/week/:year/:weekNumber", c.log.GetWeekLogs)
		authGroup.GET("/logs/month/:year/:month", c.log.GetMonthLogs)
		authGroup.GET("/logs/:date", c.log.GetLogByDate)
		authGroup.GET("/streaks", c.log.GetStreaks)
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
	}
}
