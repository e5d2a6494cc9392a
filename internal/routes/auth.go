package routes

import (
	"equipment-tracker/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, controller *controllers.AuthController) {
	authGroup := api.Group("/auth")

	authGroup.POST("/login", controller.Login)
	authGroup.POST("/refresh", controller.Refresh)
}
