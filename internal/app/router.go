package app

import (
	"edupath_backend/docs"
	"edupath_backend/internal/config"
	"edupath_backend/internal/middleware"
	"edupath_backend/internal/model"
	"edupath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerAuthenticatedRoutes(authGroup, c)
		a.registerEditorRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

// Catalog reads are open so the frontend can render paths for guests.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/path", c.path.GetAll)
		public.GET("/path/:id", c.path.GetByID)

		public.GET("/nodes", c.node.GetAll)
		public.GET("/nodes/tree", c.node.GetTree)
		public.GET("/nodes/:id", c.node.GetByID)

		public.GET("/content", c.content.GetAll)
		public.GET("/content/:id", c.content.GetByID)

		public.GET("/questions", c.question.GetAll)
		public.GET("/questions/:id", c.question.GetByID)
	}
}

func (a *App) registerAuthenticatedRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/categories", c.category.GetAll)
	rg.GET("/categories/:id", c.category.GetByID)

	rg.POST("/questions/:id/check", c.question.CheckAnswer)

	rg.GET("/users/me", c.user.GetMe)
	rg.PATCH("/users/update-me", c.user.UpdateMe)
	rg.PATCH("/users/update-password", c.user.UpdatePassword)

	progress := rg.Group("/progress")
	{
		progress.GET("", c.progress.GetUserProgress)
		progress.GET("/stats", c.progress.GetUserStats)
		progress.GET("/:pathId", c.progress.GetPathProgress)
		progress.POST("/start", c.progress.Start)
		progress.POST("/:pathId/complete", c.progress.CompleteNode)
		progress.POST("/:pathId/reset", c.progress.Reset)
		progress.DELETE("/:pathId", c.progress.Abandon)
	}
}

func (a *App) registerEditorRoutes(rg *gin.RouterGroup, c *controllers) {
	editor := rg.Group("")
	editor.Use(middleware.RoleMiddleware(model.Teacher))
	{
		editor.POST("/categories", c.category.Create)
		editor.PUT("/categories/:id", c.category.Update)

		editor.POST("/path", c.path.Create)
		editor.PUT("/path/reorder", c.path.Reorder)
		editor.PUT("/path/:id", c.path.Update)

		editor.POST("/nodes", c.node.Create)
		editor.POST("/nodes/reorder", c.node.Reorder)
		editor.PUT("/nodes/:id", c.node.Update)

		editor.POST("/content", c.content.Create)
		editor.POST("/content/:id", c.content.Update)

		editor.POST("/questions", c.question.Create)
		editor.POST("/questions/:id", c.question.Update)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.DELETE("/path/:id", c.path.Delete)
		admin.DELETE("/nodes/:id", c.node.Delete)
		admin.DELETE("/content/:id", c.content.Delete)
		admin.DELETE("/questions/:id", c.question.Delete)

		admin.GET("/users", c.user.GetAll)
		admin.GET("/users/:id", c.user.GetByID)
		admin.POST("/users", c.user.Create)
		admin.PATCH("/users/:id", c.user.Update)
		admin.PATCH("/users/:id/role", c.user.UpdateRole)
		admin.DELETE("/users/:id", c.user.Delete)
	}
}
