package controllers

import (
	"errors"
	"net/http"

	"equipment-tracker/internal/dto"
	"equipment-tracker/internal/services"
	apperrors "equipment-tracker/pkg/errors"
	"equipment-tracker/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	importService    services.EquipmentImportServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	importService services.EquipmentImportServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		importService:    importService,
		logger:           logger,
	}
}

// handleError переводит доменные ошибки в HTTP-ответы; всё
// нераспознанное уходит как 500 с запасным сообщением.
func (c *EquipmentController) handleError(ctx echo.Context, err error, fallback string) error {
	var inputErr *apperrors.InvalidInputError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, "Оборудование не найдено", err, nil), c.logger)
	case errors.Is(err, apperrors.ErrSerialConflict):
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusConflict, apperrors.ErrSerialConflict.Error(), err, nil), c.logger)
	case errors.Is(err, apperrors.ErrUserIDNotFoundInContext),
		errors.As(err, &inputErr):
		return utils.ErrorResponse(ctx, err, c.logger)
	default:
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, fallback, err, nil), c.logger)
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	opts := utils.ParseListOptions(ctx.Request().URL.Query())

	list, err := c.equipmentService.GetEquipments(ctx.Request().Context(), opts)
	if err != nil {
		c.logger.Error("GetEquipments: ошибка при получении списка оборудования", zap.Error(err))
		return c.handleError(ctx, err, "Не удалось получить список оборудования")
	}

	return utils.SuccessResponse(ctx, dto.NewEquipmentDTOs(list), "Список оборудования успешно получен", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	equipment, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindEquipment: ошибка при поиске оборудования", zap.String("id", id), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось найти оборудование")
	}

	return utils.SuccessResponse(ctx, dto.NewEquipmentDTO(equipment), "Оборудование успешно найдено", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var data dto.CreateEquipmentDTO
	if err := ctx.Bind(&data); err != nil {
		c.logger.Error("CreateEquipment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}

	if err := ctx.Validate(&data); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), data)
	if err != nil {
		c.logger.Error("CreateEquipment: ошибка при создании оборудования",
			zap.String("serial_number", data.SerialNumber), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось создать оборудование")
	}

	return utils.SuccessResponse(ctx, dto.NewEquipmentDTO(equipment), "Оборудование успешно создано", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	var data dto.UpdateEquipmentDTO
	if err := ctx.Bind(&data); err != nil {
		c.logger.Error("UpdateEquipment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}

	if err := ctx.Validate(&data); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, data)
	if err != nil {
		c.logger.Error("UpdateEquipment: ошибка при обновлении оборудования", zap.String("id", id), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось обновить оборудование")
	}

	return utils.SuccessResponse(ctx, dto.NewEquipmentDTO(equipment), "Оборудование успешно обновлено", http.StatusOK)
}

func (c *EquipmentController) ArchiveEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.equipmentService.ArchiveEquipment(ctx.Request().Context(), id); err != nil {
		c.logger.Error("ArchiveEquipment: ошибка при архивации", zap.String("id", id), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось архивировать оборудование")
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Оборудование архивировано", http.StatusOK)
}

func (c *EquipmentController) UnarchiveEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.equipmentService.UnarchiveEquipment(ctx.Request().Context(), id); err != nil {
		c.logger.Error("UnarchiveEquipment: ошибка при возврате из архива", zap.String("id", id), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось вернуть оборудование из архива")
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Оборудование возвращено из архива", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteEquipment: ошибка при удалении оборудования", zap.String("id", id), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось удалить оборудование")
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Оборудование успешно удалено", http.StatusOK)
}

func (c *EquipmentController) AddMaintenanceRecord(ctx echo.Context) error {
	id := ctx.Param("id")

	var data dto.CreateMaintenanceDTO
	if err := ctx.Bind(&data); err != nil {
		c.logger.Error("AddMaintenanceRecord: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}

	if err := ctx.Validate(&data); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	record, err := c.equipmentService.AddMaintenanceRecord(ctx.Request().Context(), id, data)
	if err != nil {
		c.logger.Error("AddMaintenanceRecord: ошибка при добавлении записи обслуживания",
			zap.String("equipment_id", id), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось добавить запись обслуживания")
	}

	return utils.SuccessResponse(ctx, dto.NewMaintenanceDTO(record), "Запись обслуживания добавлена", http.StatusCreated)
}

func (c *EquipmentController) GetMaintenanceRecords(ctx echo.Context) error {
	id := ctx.Param("id")

	records, err := c.equipmentService.GetMaintenanceRecords(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("GetMaintenanceRecords: ошибка при получении истории обслуживания",
			zap.String("equipment_id", id), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось получить историю обслуживания")
	}

	return utils.SuccessResponse(ctx, dto.NewMaintenanceDTOs(records), "История обслуживания получена", http.StatusOK)
}

func (c *EquipmentController) GetEquipmentEvents(ctx echo.Context) error {
	id := ctx.Param("id")

	events, err := c.equipmentService.GetEquipmentEvents(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("GetEquipmentEvents: ошибка при получении журнала событий",
			zap.String("equipment_id", id), zap.Error(err))
		return c.handleError(ctx, err, "Не удалось получить журнал событий")
	}

	return utils.SuccessResponse(ctx, dto.NewEventDTOs(events), "Журнал событий получен", http.StatusOK)
}

func (c *EquipmentController) ImportEquipments(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Файл не передан (поле 'file')", err, nil), c.logger)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Не удалось открыть файл", err, nil), c.logger)
	}
	defer src.Close()

	result, err := c.importService.ImportFromExcel(ctx.Request().Context(), src)
	if err != nil {
		c.logger.Error("ImportEquipments: ошибка импорта", zap.Error(err))
		return c.handleError(ctx, err, "Импорт оборудования не удался")
	}

	return utils.SuccessResponse(ctx, result, "Импорт завершён", http.StatusOK)
}

func (c *EquipmentController) ExportEquipments(ctx echo.Context) error {
	f, err := c.importService.ExportToExcel(ctx.Request().Context())
	if err != nil {
		c.logger.Error("ExportEquipments: ошибка экспорта", zap.Error(err))
		return c.handleError(ctx, err, "Экспорт оборудования не удался")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="equipment.xlsx"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	return f.Write(ctx.Response().Writer)
}
