package routes

import (
	"github.com/labstack/echo/v4"

	"fibertrack/internal/controllers"
)

func initProjectRoutes(
	g *echo.Group,
	projectCtrl *controllers.ProjectController,
	taskCtrl *controllers.TaskController,
	documentCtrl *controllers.DocumentController,
) {
	projects := g.Group("/projects")

	projects.GET("", projectCtrl.GetProjects)
	projects.POST("", projectCtrl.CreateProject)
	projects.GET("/search/:query", projectCtrl.SearchProjects)
	projects.GET("/stage/:stage", projectCtrl.GetProjectsByStage)
	projects.GET("/service/:type", projectCtrl.GetProjectsByServiceType)
	projects.GET("/status/:status", projectCtrl.GetProjectsByStatus)

	projects.GET("/:id", projectCtrl.GetProject)
	projects.PATCH("/:id", projectCtrl.UpdateProject)
	projects.POST("/:id/stage", projectCtrl.ChangeStage)
	projects.GET("/:id/history", projectCtrl.GetStageHistory)

	projects.GET("/:id/tasks", taskCtrl.GetProjectTasks)
	projects.POST("/:id/tasks", taskCtrl.CreateTask)

	projects.GET("/:id/documents", documentCtrl.GetProjectDocuments)
	projects.POST("/:id/documents", documentCtrl.UploadDocument)
}
