package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fibertrack/internal/controllers"
	"fibertrack/pkg/middleware"
	"fibertrack/pkg/service"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Project     *controllers.ProjectController
	TeamMember  *controllers.TeamMemberController
	Task        *controllers.TaskController
	Document    *controllers.DocumentController
	Badge       *controllers.BadgeController
	Performance *controllers.PerformanceController
	Dashboard   *controllers.DashboardController
	Report      *controllers.ReportController
}

// InitRoutes mounts the public auth endpoints and the authenticated API
// surface.
func InitRoutes(
	e *echo.Echo,
	ctrls Controllers,
	jwtService service.JWTService,
	revocations middleware.RevocationChecker,
	logger *zap.Logger,
) {
	api := e.Group("/api")

	initAuthRoutes(api, ctrls.Auth, jwtService, revocations, logger)

	protected := api.Group("", middleware.Auth(jwtService, revocations, logger))
	initProjectRoutes(protected, ctrls.Project, ctrls.Task, ctrls.Document)
	initTeamRoutes(protected, ctrls.TeamMember, ctrls.Badge, ctrls.Performance)
	initTaskRoutes(protected, ctrls.Task)
	initPerformanceRoutes(protected, ctrls.Performance, ctrls.Report)
	protected.GET("/dashboard/stats", ctrls.Dashboard.GetStats)
}

func initAuthRoutes(
	api *echo.Group,
	ctrl *controllers.AuthController,
	jwtService service.JWTService,
	revocations middleware.RevocationChecker,
	logger *zap.Logger,
) {
	auth := api.Group("/auth")
	auth.POST("/register", ctrl.Register)
	auth.POST("/login", ctrl.Login)
	auth.POST("/refresh", ctrl.Refresh)

	authProtected := auth.Group("", middleware.Auth(jwtService, revocations, logger))
	authProtected.POST("/logout", ctrl.Logout)
	authProtected.GET("/me", ctrl.Me)
}
