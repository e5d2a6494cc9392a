package routes

import (
	"equipment-tracker/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(api *echo.Group, controller *controllers.DashboardController) {
	dashboardGroup := api.Group("/dashboard")

	dashboardGroup.GET("/service-overview", controller.GetServiceOverview)
}
