package routes

import (
	"github.com/labstack/echo/v4"

	"fibertrack/internal/controllers"
)

func initTeamRoutes(
	g *echo.Group,
	teamCtrl *controllers.TeamMemberController,
	badgeCtrl *controllers.BadgeController,
	performanceCtrl *controllers.PerformanceController,
) {
	team := g.Group("/team-members")

	team.GET("", teamCtrl.GetTeamMembers)
	team.POST("", teamCtrl.CreateTeamMember)
	team.GET("/:id", teamCtrl.GetTeamMember)

	team.GET("/:id/badges", badgeCtrl.GetTeamMemberBadges)
	team.POST("/:id/badges", badgeCtrl.AwardBadge)

	team.GET("/:id/performance", performanceCtrl.GetMetric)
	team.PUT("/:id/performance", performanceCtrl.UpsertMetric)

	g.GET("/badges", badgeCtrl.GetBadgeCatalog)
}
