package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"equipment-tracker/internal/dto"
	"equipment-tracker/pkg/constants"
	apperrors "equipment-tracker/pkg/errors"
	"equipment-tracker/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type EquipmentImportServiceInterface interface {
	ImportFromExcel(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error)
	ExportToExcel(ctx context.Context) (*excelize.File, error)
}

type EquipmentImportService struct {
	equipmentService EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentImportService(equipmentService EquipmentServiceInterface, logger *zap.Logger) EquipmentImportServiceInterface {
	return &EquipmentImportService{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

// columnIndexes — найденные позиции колонок в шапке файла.
type columnIndexes struct {
	name, serial, status, owner, location, purchase, lastService, interval int
}

// findHeader ищет строку шапки: нужна колонка с названием и колонка с
// серийным номером. Реестры приходят из разных источников, поэтому
// заголовки матчим по вхождению, а не по точному совпадению.
func findHeader(rows [][]string) (columnIndexes, int, bool) {
	idx := columnIndexes{name: -1, serial: -1, status: -1, owner: -1, location: -1, purchase: -1, lastService: -1, interval: -1}

	for rIdx, row := range rows {
		probe := columnIndexes{name: -1, serial: -1, status: -1, owner: -1, location: -1, purchase: -1, lastService: -1, interval: -1}
		for cIdx, colName := range row {
			c := strings.ToLower(strings.TrimSpace(colName))
			switch {
			case strings.Contains(c, "серийн") || strings.Contains(c, "serial"):
				probe.serial = cIdx
			case strings.Contains(c, "назван") || strings.Contains(c, "наименован") || c == "name":
				probe.name = cIdx
			case strings.Contains(c, "статус") || c == "status":
				probe.status = cIdx
			case strings.Contains(c, "владел") || c == "owner":
				probe.owner = cIdx
			case strings.Contains(c, "располож") || strings.Contains(c, "адрес") || c == "location":
				probe.location = cIdx
			case strings.Contains(c, "покупк") || strings.Contains(c, "purchase"):
				probe.purchase = cIdx
			case strings.Contains(c, "обслуж") || strings.Contains(c, "service"):
				probe.lastService = cIdx
			case strings.Contains(c, "интервал") || strings.Contains(c, "interval"):
				probe.interval = cIdx
			}
		}
		if probe.name != -1 && probe.serial != -1 {
			return probe, rIdx, true
		}
	}
	return idx, -1, false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeStatus(raw string) string {
	switch strings.ToLower(raw) {
	case constants.StatusActive, "активно", "активное":
		return constants.StatusActive
	case constants.StatusMaintenance, "обслуживание", "в обслуживании":
		return constants.StatusMaintenance
	case constants.StatusInactive, "неактивно", "неактивное":
		return constants.StatusInactive
	default:
		return ""
	}
}

// ImportFromExcel создаёт оборудование из строк .xlsx-файла. Каждая
// строка проходит через обычный CreateEquipment, так что проверка
// серийников и журнал событий работают как при ручном создании.
func (s *EquipmentImportService) ImportFromExcel(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	result := &dto.ImportResultDTO{}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения листа %q: %w", sheet, err)
		}

		cols, headerRow, found := findHeader(rows)
		if !found {
			continue
		}

		for rIdx := headerRow + 1; rIdx < len(rows); rIdx++ {
			row := rows[rIdx]

			data := dto.CreateEquipmentDTO{
				Name:            cell(row, cols.name),
				SerialNumber:    cell(row, cols.serial),
				Status:          normalizeStatus(cell(row, cols.status)),
				PurchaseDate:    cell(row, cols.purchase),
				LastServiceDate: cell(row, cols.lastService),
			}
			if data.Name == "" && data.SerialNumber == "" {
				continue // пустой хвост листа
			}
			if data.Name == "" || data.SerialNumber == "" {
				result.Skipped = append(result.Skipped,
					fmt.Sprintf("%s, строка %d: нет названия или серийного номера", sheet, rIdx+1))
				continue
			}

			if owner := cell(row, cols.owner); owner != "" {
				data.Owner = &owner
			}
			if location := cell(row, cols.location); location != "" {
				data.Location = &location
			}
			if rawInterval := cell(row, cols.interval); rawInterval != "" {
				if interval, err := strconv.Atoi(rawInterval); err == nil && interval > 0 {
					data.ServiceIntervalDays = interval
				}
			}

			if _, err := s.equipmentService.CreateEquipment(ctx, data); err != nil {
				if errors.Is(err, apperrors.ErrSerialConflict) {
					result.Skipped = append(result.Skipped,
						fmt.Sprintf("%s, строка %d: серийный номер %q уже занят", sheet, rIdx+1, data.SerialNumber))
					continue
				}
				return result, err
			}
			result.Created++
		}

		// Шапка найдена на одном листе — остальные не трогаем.
		break
	}

	s.logger.Info("Импорт оборудования завершён",
		zap.Int("created", result.Created),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

var exportHeaders = []string{
	"Название", "Серийный номер", "Статус", "Владелец", "Расположение",
	"Дата покупки", "Последнее обслуживание", "Следующее обслуживание",
	"Интервал (дни)", "Архив",
}

// ExportToExcel выгружает весь реестр (включая архив) в .xlsx.
func (s *EquipmentImportService) ExportToExcel(ctx context.Context) (*excelize.File, error) {
	list, err := s.equipmentService.GetEquipments(ctx, utils.ListOptions{
		IncludeArchived: true,
		SortMode:        constants.SortNameAsc,
	})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, h := range exportHeaders {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cellName, h)
		f.SetCellStyle(sheet, cellName, cellName, style)
	}

	for i := range list {
		e := &list[i]
		archived := ""
		if e.IsArchived() {
			archived = "да"
		}
		values := []interface{}{
			e.Name, e.SerialNumber, e.Status, e.Owner.String, e.Location.String,
			e.PurchaseDate.String, e.LastServiceDate.String, e.NextServiceDate.String,
			e.ServiceIntervalDays, archived,
		}
		for col, v := range values {
			cellName, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cellName, v)
		}
	}

	return f, nil
}
