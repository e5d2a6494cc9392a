package services

import (
	"context"
	"sort"
	"time"

	"equipment-tracker/internal/dto"
	"equipment-tracker/internal/entities"
	"equipment-tracker/internal/repositories"
	"equipment-tracker/pkg/constants"
	apperrors "equipment-tracker/pkg/errors"
	"equipment-tracker/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, opts utils.ListOptions) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, data dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, data dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	ArchiveEquipment(ctx context.Context, id string) error
	UnarchiveEquipment(ctx context.Context, id string) error
	DeleteEquipment(ctx context.Context, id string) error
	AddMaintenanceRecord(ctx context.Context, equipmentID string, data dto.CreateMaintenanceDTO) (*entities.MaintenanceRecord, error)
	GetMaintenanceRecords(ctx context.Context, equipmentID string) ([]entities.MaintenanceRecord, error)
	GetEquipmentEvents(ctx context.Context, equipmentID string) ([]entities.EquipmentEvent, error)
}

type EquipmentService struct {
	txManager       repositories.TxManagerInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	eventRepo       repositories.EventRepositoryInterface
	logger          *zap.Logger
}

func NewEquipmentService(
	txManager repositories.TxManagerInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	eventRepo repositories.EventRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		txManager:       txManager,
		equipmentRepo:   equipmentRepo,
		maintenanceRepo: maintenanceRepo,
		eventRepo:       eventRepo,
		logger:          logger,
	}
}

// ---------- Производные величины ----------

// EffectiveNextService возвращает «эффективную» дату следующего
// обслуживания: сохранённая дата в приоритете, иначе последнее
// обслуживание плюс интервал (по умолчанию 180 дней). Если ни того, ни
// другого не разобрать — даты нет, запись уходит в конец сортировок.
func EffectiveNextService(e *entities.Equipment) (time.Time, bool) {
	if e.NextServiceDate.Valid {
		if t, ok := utils.ParseDate(e.NextServiceDate.String); ok {
			return t, true
		}
	}
	if e.LastServiceDate.Valid {
		if t, ok := utils.ParseDate(e.LastServiceDate.String); ok {
			return t.AddDate(0, 0, serviceInterval(e.ServiceIntervalDays)), true
		}
	}
	return time.Time{}, false
}

func serviceInterval(days int) int {
	if days <= 0 {
		return constants.DefaultServiceIntervalDays
	}
	return days
}

// lastTouched — момент последнего изменения с деградацией:
// update → create → дата покупки → «самое раннее время».
func lastTouched(e *entities.Equipment) time.Time {
	if e.UpdatedAt != nil {
		return *e.UpdatedAt
	}
	return createdInstant(e)
}

func createdInstant(e *entities.Equipment) time.Time {
	if e.CreatedAt != nil {
		return *e.CreatedAt
	}
	if e.PurchaseDate.Valid {
		if t, ok := utils.ParseDate(e.PurchaseDate.String); ok {
			return t
		}
	}
	return time.Time{}
}

// compareNextService: -1 если у a дата раньше; записи без даты всегда позже.
func compareNextService(a, b *entities.Equipment) int {
	na, aok := EffectiveNextService(a)
	nb, bok := EffectiveNextService(b)
	switch {
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	case !aok && !bok:
		return 0
	}
	if na.Before(nb) {
		return -1
	}
	if nb.Before(na) {
		return 1
	}
	return 0
}

func sortEquipments(list []entities.Equipment, mode string) {
	switch mode {
	case constants.SortCreatedDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return createdInstant(&list[i]).After(createdInstant(&list[j]))
		})
	case constants.SortNameAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Name < list[j].Name
		})
	case constants.SortStatusOps:
		sort.SliceStable(list, func(i, j int) bool {
			pi := constants.StatusOpsPriority(list[i].Status)
			pj := constants.StatusOpsPriority(list[j].Status)
			if pi != pj {
				return pi < pj
			}
			if c := compareNextService(&list[i], &list[j]); c != 0 {
				return c < 0
			}
			return list[i].Name < list[j].Name
		})
	case constants.SortNextServiceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			if c := compareNextService(&list[i], &list[j]); c != 0 {
				return c < 0
			}
			return lastTouched(&list[i]).After(lastTouched(&list[j]))
		})
	default: // updated_desc
		sort.SliceStable(list, func(i, j int) bool {
			return lastTouched(&list[i]).After(lastTouched(&list[j]))
		})
	}
}

// ---------- Чтение ----------

// GetEquipments — конвейер списка: полная выборка, фильтр архива,
// вычисление дат и сортировка выполняются в памяти. Фильтровать архив
// на стороне хранилища нельзя: у легаси-записей поля может не быть вовсе.
func (s *EquipmentService) GetEquipments(ctx context.Context, opts utils.ListOptions) ([]entities.Equipment, error) {
	list, err := s.equipmentRepo.GetEquipments(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		// Отказ основного запроса (например, нет индекса) список не роняет:
		// берём плоскую выборку и сортируем сами.
		s.logger.Warn("основной запрос списка не удался, переходим на плоскую выборку", zap.Error(err))
		list, err = s.equipmentRepo.GetEquipmentsUnordered(ctx)
		if err != nil {
			return nil, err
		}
	}

	if !opts.IncludeArchived {
		filtered := list[:0]
		for _, e := range list {
			if !e.IsArchived() {
				filtered = append(filtered, e)
			}
		}
		list = filtered
	}

	sortEquipments(list, opts.SortMode)

	if opts.Limit > 0 && len(list) > opts.Limit {
		list = list[:opts.Limit]
	}
	return list, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) GetMaintenanceRecords(ctx context.Context, equipmentID string) ([]entities.MaintenanceRecord, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.maintenanceRepo.FindByEquipmentID(ctx, equipmentID)
}

func (s *EquipmentService) GetEquipmentEvents(ctx context.Context, equipmentID string) ([]entities.EquipmentEvent, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.eventRepo.FindByEquipmentID(ctx, equipmentID)
}

// ---------- Мутации ----------

func nullDate(s string) null.String {
	return null.NewString(s, s != "")
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, data dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	actorID, actorEmail, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	status := data.Status
	if status == "" {
		status = constants.StatusActive
	}

	interval := serviceInterval(data.ServiceIntervalDays)

	nextService := data.NextServiceDate
	if nextService == "" {
		if derived, ok := utils.AddDays(data.LastServiceDate, interval); ok {
			nextService = derived
		}
	}

	equipment := &entities.Equipment{
		Name:                data.Name,
		SerialNumber:        data.SerialNumber,
		Status:              status,
		PurchaseDate:        nullDate(data.PurchaseDate),
		LastServiceDate:     nullDate(data.LastServiceDate),
		NextServiceDate:     nullDate(nextService),
		ServiceIntervalDays: interval,
		Owner:               null.StringFromPtr(data.Owner),
		Location:            null.StringFromPtr(data.Location),
		CreatedBy:           actorID,
		CreatedByEmail:      null.NewString(actorEmail, actorEmail != ""),
		UpdatedBy:           actorID,
		UpdatedByEmail:      null.NewString(actorEmail, actorEmail != ""),
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		// Уникальность серийника проверяется только среди активных
		// записей: серийник архивированного актива можно занять заново.
		exists, err := s.equipmentRepo.ActiveSerialExistsInTx(ctx, tx, data.SerialNumber, "")
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrSerialConflict
		}

		if err := s.equipmentRepo.CreateEquipmentInTx(ctx, tx, equipment); err != nil {
			return err
		}

		event := &entities.EquipmentEvent{
			EquipmentID: equipment.ID,
			EventType:   constants.EventCreated,
			Message:     "Оборудование создано",
			Metadata: map[string]interface{}{
				"serial_number": equipment.SerialNumber,
			},
			CreatedBy:      actorID,
			CreatedByEmail: null.NewString(actorEmail, actorEmail != ""),
		}
		return s.eventRepo.CreateInTx(ctx, tx, event)
	})
	if err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Оборудование создано",
		zap.String("id", equipment.ID),
		zap.String("serial_number", equipment.SerialNumber))
	return equipment, nil
}

// mergeEquipment накладывает частичный патч на текущее состояние.
// serviceTouched=true, если патч трогал поля, от которых зависит
// дата следующего обслуживания.
func mergeEquipment(current *entities.Equipment, changes dto.UpdateEquipmentDTO) (*entities.Equipment, bool) {
	merged := *current
	serviceTouched := false

	if changes.Name != nil {
		merged.Name = *changes.Name
	}
	if changes.SerialNumber != nil {
		merged.SerialNumber = *changes.SerialNumber
	}
	if changes.Status != nil {
		merged.Status = *changes.Status
	}
	if changes.PurchaseDate != nil {
		merged.PurchaseDate = nullDate(*changes.PurchaseDate)
	}
	if changes.LastServiceDate != nil {
		merged.LastServiceDate = nullDate(*changes.LastServiceDate)
		serviceTouched = true
	}
	if changes.NextServiceDate != nil {
		merged.NextServiceDate = nullDate(*changes.NextServiceDate)
	}
	if changes.ServiceIntervalDays != nil {
		merged.ServiceIntervalDays = *changes.ServiceIntervalDays
		serviceTouched = true
	}
	if changes.Owner != nil {
		merged.Owner = null.StringFrom(*changes.Owner)
	}
	if changes.Location != nil {
		merged.Location = null.StringFrom(*changes.Location)
	}

	return &merged, serviceTouched
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, data dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	actorID, actorEmail, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entities.Equipment
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.equipmentRepo.FindEquipmentInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		merged, serviceTouched := mergeEquipment(current, data)

		if data.SerialNumber != nil && *data.SerialNumber != current.SerialNumber {
			exists, err := s.equipmentRepo.ActiveSerialExistsInTx(ctx, tx, merged.SerialNumber, id)
			if err != nil {
				return err
			}
			if exists {
				return apperrors.ErrSerialConflict
			}
		}

		// Дата следующего обслуживания пересчитывается, если её не задали
		// явно, а входные данные пересчёта изменились.
		if data.NextServiceDate == nil && serviceTouched {
			if derived, ok := utils.AddDays(merged.LastServiceDate.String, serviceInterval(merged.ServiceIntervalDays)); ok && merged.LastServiceDate.Valid {
				merged.NextServiceDate = null.StringFrom(derived)
			}
		}

		merged.UpdatedBy = actorID
		merged.UpdatedByEmail = null.NewString(actorEmail, actorEmail != "")

		if err := s.equipmentRepo.UpdateEquipmentInTx(ctx, tx, merged); err != nil {
			return err
		}

		event := &entities.EquipmentEvent{
			EquipmentID:    id,
			EventType:      constants.EventUpdated,
			Message:        "Оборудование обновлено",
			CreatedBy:      actorID,
			CreatedByEmail: null.NewString(actorEmail, actorEmail != ""),
		}
		if err := s.eventRepo.CreateInTx(ctx, tx, event); err != nil {
			return err
		}

		updated = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *EquipmentService) ArchiveEquipment(ctx context.Context, id string) error {
	actorID, actorEmail, err := utils.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.equipmentRepo.FindEquipmentInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		// Повторная архивация — no-op, событие не пишем.
		if current.IsArchived() {
			return nil
		}

		if err := s.equipmentRepo.ArchiveInTx(ctx, tx, id, actorID, actorEmail); err != nil {
			return err
		}

		event := &entities.EquipmentEvent{
			EquipmentID:    id,
			EventType:      constants.EventArchived,
			Message:        "Оборудование архивировано",
			CreatedBy:      actorID,
			CreatedByEmail: null.NewString(actorEmail, actorEmail != ""),
		}
		return s.eventRepo.CreateInTx(ctx, tx, event)
	})
}

func (s *EquipmentService) UnarchiveEquipment(ctx context.Context, id string) error {
	actorID, actorEmail, err := utils.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.equipmentRepo.FindEquipmentInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if !current.IsArchived() {
			return nil
		}

		if err := s.equipmentRepo.UnarchiveInTx(ctx, tx, id, actorID, actorEmail); err != nil {
			return err
		}

		event := &entities.EquipmentEvent{
			EquipmentID:    id,
			EventType:      constants.EventUnarchived,
			Message:        "Оборудование возвращено из архива",
			CreatedBy:      actorID,
			CreatedByEmail: null.NewString(actorEmail, actorEmail != ""),
		}
		return s.eventRepo.CreateInTx(ctx, tx, event)
	})
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}

// AddMaintenanceRecord пишет неизменяемую запись обслуживания и в той же
// транзакции обновляет last/next service date родителя и журнал событий.
func (s *EquipmentService) AddMaintenanceRecord(ctx context.Context, equipmentID string, data dto.CreateMaintenanceDTO) (*entities.MaintenanceRecord, error) {
	actorID, actorEmail, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var record *entities.MaintenanceRecord
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindEquipmentInTx(ctx, tx, equipmentID)
		if err != nil {
			return err
		}

		interval := serviceInterval(equipment.ServiceIntervalDays)
		nextService, ok := utils.AddDays(data.Date, interval)
		if !ok {
			return apperrors.NewInvalidInputError("некорректная дата обслуживания: %q", data.Date)
		}

		record = &entities.MaintenanceRecord{
			EquipmentID:    equipmentID,
			Date:           data.Date,
			Type:           data.Type,
			Notes:          null.StringFromPtr(data.Notes),
			CreatedBy:      actorID,
			CreatedByEmail: null.NewString(actorEmail, actorEmail != ""),
		}
		if err := s.maintenanceRepo.CreateInTx(ctx, tx, record); err != nil {
			return err
		}

		if err := s.equipmentRepo.UpdateServiceDatesInTx(ctx, tx, equipmentID, data.Date, nextService, actorID, actorEmail); err != nil {
			return err
		}

		event := &entities.EquipmentEvent{
			EquipmentID: equipmentID,
			EventType:   constants.EventMaintenanceAdded,
			Message:     "Добавлена запись обслуживания",
			Metadata: map[string]interface{}{
				"date":              data.Date,
				"type":              data.Type,
				"next_service_date": nextService,
			},
			CreatedBy:      actorID,
			CreatedByEmail: null.NewString(actorEmail, actorEmail != ""),
		}
		return s.eventRepo.CreateInTx(ctx, tx, event)
	})
	if err != nil {
		s.logger.Error("Ошибка при добавлении записи обслуживания",
			zap.String("equipment_id", equipmentID), zap.Error(err))
		return nil, err
	}
	return record, nil
}
