package routes

import (
	"github.com/labstack/echo/v4"

	"fibertrack/internal/controllers"
)

func initPerformanceRoutes(
	g *echo.Group,
	performanceCtrl *controllers.PerformanceController,
	reportCtrl *controllers.ReportController,
) {
	monthly := g.Group("/performance/monthly")

	monthly.GET("/:year", performanceCtrl.GetYearlyOverview)
	monthly.GET("/:year/:month", performanceCtrl.GetMonthly)
	monthly.PUT("/:year/:month", performanceCtrl.UpsertMonthly)

	g.GET("/reports/performance/:year", reportCtrl.DownloadPerformanceReport)
}
