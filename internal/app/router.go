package app

import (
	"edupulse_backend/docs"
	"edupulse_backend/internal/config"
	"edupulse_backend/internal/middleware"
	"edupulse_backend/internal/model"
	"edupulse_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 课程目录对游客开放
		public.GET("/content", c.content.GetContent)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	// 内容
	rg.GET("/courses/:id", c.content.GetCourse)
	rg.GET("/courses/:id/video", c.content.GetVideoPlayback)

	// 仪表盘（派生统计）
	rg.GET("/dashboard", c.dashboard.GetDashboard)

	// 点击流采集
	rg.POST("/clickstream", c.clickstream.Track)
	rg.POST("/clickstream/batch", c.clickstream.TrackBatch)
	rg.GET("/clickstream/user/:id", c.clickstream.GetUserEvents)

	// 测验
	rg.POST("/quizzes/:quizId/start", c.quiz.StartQuiz)
	rg.POST("/quizzes/:quizId/submit", c.quiz.SubmitQuiz)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))
	{
		teacher.POST("/courses", c.content.CreateCourse)
		teacher.POST("/courses/:id/video", c.content.UploadCourseVideo)
	}
}
