package routes

import (
	"equipment-tracker/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(api *echo.Group, controller *controllers.EquipmentController) {
	equipmentGroup := api.Group("/equipments")

	equipmentGroup.GET("", controller.GetEquipments)
	equipmentGroup.POST("", controller.CreateEquipment)
	equipmentGroup.GET("/export", controller.ExportEquipments)
	equipmentGroup.POST("/import", controller.ImportEquipments)
	equipmentGroup.GET("/:id", controller.FindEquipment)
	equipmentGroup.PUT("/:id", controller.UpdateEquipment)
	equipmentGroup.DELETE("/:id", controller.DeleteEquipment)
	equipmentGroup.POST("/:id/archive", controller.ArchiveEquipment)
	equipmentGroup.POST("/:id/unarchive", controller.UnarchiveEquipment)
	equipmentGroup.POST("/:id/maintenance", controller.AddMaintenanceRecord)
	equipmentGroup.GET("/:id/maintenance", controller.GetMaintenanceRecords)
	equipmentGroup.GET("/:id/events", controller.GetEquipmentEvents)
}
