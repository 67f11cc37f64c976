package routes

import (
	"github.com/labstack/echo/v4"

	"fibertrack/internal/controllers"
)

func initTaskRoutes(g *echo.Group, taskCtrl *controllers.TaskController) {
	g.PATCH("/tasks/:id", taskCtrl.UpdateTask)
}
