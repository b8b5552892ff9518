package app

import (
	"interview_admin_backend/docs"
	"interview_admin_backend/internal/config"
	"interview_admin_backend/internal/middleware"
	"interview_admin_backend/internal/model"
	"interview_admin_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 候选人接口（候选人令牌只能访问自己的记录，管理员不受限）
	a.registerCandidateRoutes(router, c, cfg)

	// 3. 管理端接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.AdminLogin)
		public.POST("/auth/candidate", c.auth.CandidateLogin)
	}

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(a.Config))
	{
		authed.GET("/profile", c.auth.GetProfile)
	}
}

func (a *App) registerCandidateRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	candidates := router.Group("/api/candidates")
	candidates.Use(middleware.AuthMiddleware(cfg), middleware.CandidateSelfMiddleware("id"))
	{
		candidates.GET("/:id/questions", c.candidate.GetAssignedQuestions)
		candidates.POST("/:id/submit", c.candidate.Submit)
		candidates.POST("/:id/answers/upload", c.candidate.UploadAnswerFile)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/dashboard", c.dashboard.Get)

		admin.POST("/departments", c.department.Create)
		admin.GET("/departments", c.department.List)
		admin.GET("/departments/:id", c.department.Get)
		admin.PUT("/departments/:id", c.department.Update)
		admin.DELETE("/departments/:id", c.department.Delete)

		admin.POST("/questions", c.question.Create)
		admin.GET("/questions", c.question.List)
		admin.GET("/questions/:id", c.question.Get)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)

		admin.POST("/campaigns", c.campaign.Create)
		admin.GET("/campaigns", c.campaign.List)
		admin.GET("/campaigns/:id", c.campaign.Get)
		admin.GET("/campaigns/:id/stats", c.campaign.GetStats)
		admin.PUT("/campaigns/:id", c.campaign.Update)
		admin.PATCH("/campaigns/:id/status", c.campaign.UpdateStatus)
		admin.DELETE("/campaigns/:id", c.campaign.Delete)

		admin.POST("/candidates", c.candidate.Create)
		admin.GET("/candidates", c.candidate.List)
		admin.GET("/candidates/:id", c.candidate.Get)
		admin.DELETE("/candidates/:id", c.candidate.Delete)
		admin.POST("/candidates/:id/reset-password", c.candidate.ResetPassword)

		admin.GET("/results", c.result.List)
	}
}
