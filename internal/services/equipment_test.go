package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"equipment-tracker/internal/dto"
	"equipment-tracker/internal/entities"
	apperrors "equipment-tracker/pkg/errors"
	"equipment-tracker/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---------- Фейковые зависимости ----------

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeEquipmentRepo struct {
	items   map[string]*entities.Equipment
	order   []string
	nextID  int
	listErr error
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: map[string]*entities.Equipment{}}
}

func (r *fakeEquipmentRepo) snapshot() []entities.Equipment {
	out := make([]entities.Equipment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.items[id])
	}
	return out
}

func (r *fakeEquipmentRepo) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.snapshot(), nil
}

func (r *fakeEquipmentRepo) GetEquipmentsUnordered(ctx context.Context) ([]entities.Equipment, error) {
	return r.snapshot(), nil
}

func (r *fakeEquipmentRepo) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEquipmentRepo) FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error) {
	return r.FindEquipment(ctx, id)
}

func (r *fakeEquipmentRepo) ActiveSerialExistsInTx(ctx context.Context, tx pgx.Tx, serial string, excludeID string) (bool, error) {
	for _, e := range r.items {
		if e.ID != excludeID && !e.IsArchived() && e.SerialNumber == serial {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEquipmentRepo) CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error {
	if e.ID == "" {
		r.nextID++
		e.ID = fmt.Sprintf("eq-%03d", r.nextID)
	}
	now := time.Now()
	e.CreatedAt = &now
	e.UpdatedAt = &now
	copied := *e
	r.items[e.ID] = &copied
	r.order = append(r.order, e.ID)
	return nil
}

func (r *fakeEquipmentRepo) UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error {
	if _, ok := r.items[e.ID]; !ok {
		return apperrors.ErrNotFound
	}
	now := time.Now()
	e.UpdatedAt = &now
	copied := *e
	r.items[e.ID] = &copied
	return nil
}

func (r *fakeEquipmentRepo) ArchiveInTx(ctx context.Context, tx pgx.Tx, id string, actorID uint64, actorEmail string) error {
	e, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	now := time.Now()
	e.ArchivedAt = null.TimeFrom(now)
	e.ArchivedBy = null.Int64From(int64(actorID))
	e.ArchivedByEmail = null.StringFrom(actorEmail)
	e.UpdatedAt = &now
	return nil
}

func (r *fakeEquipmentRepo) UnarchiveInTx(ctx context.Context, tx pgx.Tx, id string, actorID uint64, actorEmail string) error {
	e, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	now := time.Now()
	e.ArchivedAt = null.Time{}
	e.ArchivedBy = null.Int64{}
	e.ArchivedByEmail = null.String{}
	e.UpdatedAt = &now
	return nil
}

func (r *fakeEquipmentRepo) UpdateServiceDatesInTx(ctx context.Context, tx pgx.Tx, id string, lastService, nextService string, actorID uint64, actorEmail string) error {
	e, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	now := time.Now()
	e.LastServiceDate = null.StringFrom(lastService)
	e.NextServiceDate = null.StringFrom(nextService)
	e.UpdatedBy = actorID
	e.UpdatedByEmail = null.StringFrom(actorEmail)
	e.UpdatedAt = &now
	return nil
}

func (r *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeMaintenanceRepo struct {
	records []entities.MaintenanceRecord
}

func (r *fakeMaintenanceRepo) CreateInTx(ctx context.Context, tx pgx.Tx, record *entities.MaintenanceRecord) error {
	record.ID = uint64(len(r.records) + 1)
	now := time.Now()
	record.CreatedAt = &now
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeMaintenanceRepo) FindByEquipmentID(ctx context.Context, equipmentID string) ([]entities.MaintenanceRecord, error) {
	var out []entities.MaintenanceRecord
	for _, rec := range r.records {
		if rec.EquipmentID == equipmentID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events []entities.EquipmentEvent
}

func (r *fakeEventRepo) CreateInTx(ctx context.Context, tx pgx.Tx, event *entities.EquipmentEvent) error {
	event.ID = uint64(len(r.events) + 1)
	now := time.Now()
	event.CreatedAt = &now
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeEventRepo) FindByEquipmentID(ctx context.Context, equipmentID string) ([]entities.EquipmentEvent, error) {
	var out []entities.EquipmentEvent
	for _, ev := range r.events {
		if ev.EquipmentID == equipmentID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func newTestService() (EquipmentServiceInterface, *fakeEquipmentRepo, *fakeMaintenanceRepo, *fakeEventRepo) {
	equipmentRepo := newFakeEquipmentRepo()
	maintenanceRepo := &fakeMaintenanceRepo{}
	eventRepo := &fakeEventRepo{}
	svc := NewEquipmentService(&fakeTxManager{}, equipmentRepo, maintenanceRepo, eventRepo, zap.NewNop())
	return svc, equipmentRepo, maintenanceRepo, eventRepo
}

func actorCtx() context.Context {
	return utils.ContextWithActor(context.Background(), 7, "admin@equipment-tracker.local")
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedEquipment(t *testing.T, svc EquipmentServiceInterface, data dto.CreateEquipmentDTO) *entities.Equipment {
	t.Helper()
	e, err := svc.CreateEquipment(actorCtx(), data)
	require.NoError(t, err)
	return e
}

// ---------- Производная дата обслуживания ----------

func TestEffectiveNextService(t *testing.T) {
	tests := []struct {
		name     string
		e        entities.Equipment
		want     string
		wantNone bool
	}{
		{
			name: "сохранённая дата в приоритете над вычисленной",
			e: entities.Equipment{
				NextServiceDate:     null.StringFrom("2026-03-01"),
				LastServiceDate:     null.StringFrom("2026-01-01"),
				ServiceIntervalDays: 30,
			},
			want: "2026-03-01",
		},
		{
			name: "вычисление: последнее обслуживание плюс интервал",
			e: entities.Equipment{
				LastServiceDate:     null.StringFrom("2026-02-01"),
				ServiceIntervalDays: 90,
			},
			want: "2026-05-02",
		},
		{
			name: "интервал по умолчанию 180 дней",
			e: entities.Equipment{
				LastServiceDate: null.StringFrom("2025-07-15"),
			},
			want: "2026-01-11",
		},
		{
			name: "отрицательный интервал заменяется дефолтным",
			e: entities.Equipment{
				LastServiceDate:     null.StringFrom("2025-07-15"),
				ServiceIntervalDays: -5,
			},
			want: "2026-01-11",
		},
		{
			name: "кривая сохранённая дата — деградация к вычислению",
			e: entities.Equipment{
				NextServiceDate:     null.StringFrom("не дата"),
				LastServiceDate:     null.StringFrom("2026-02-01"),
				ServiceIntervalDays: 90,
			},
			want: "2026-05-02",
		},
		{
			name:     "нет ни одной даты",
			e:        entities.Equipment{ServiceIntervalDays: 90},
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EffectiveNextService(&tt.e)
			if tt.wantNone {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, utils.FormatDate(got))
		})
	}
}

// ---------- Конвейер списка ----------

func TestGetEquipments_FiltersArchived(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	active := seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SN-1"})
	archived := seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Принтер", SerialNumber: "SN-2"})
	require.NoError(t, svc.ArchiveEquipment(ctx, archived.ID))

	list, err := svc.GetEquipments(ctx, utils.ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	list, err = svc.GetEquipments(ctx, utils.ListOptions{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGetEquipments_SortNameAscAndLimit(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Ноутбук", SerialNumber: "SN-1"})
	seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "ИБП", SerialNumber: "SN-2"})
	seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SN-3"})

	list, err := svc.GetEquipments(ctx, utils.ListOptions{SortMode: "name_asc", Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ИБП", list[0].Name)
	assert.Equal(t, "Ноутбук", list[1].Name)
}

func TestGetEquipments_SortStatusOps(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Сервер", SerialNumber: "SN-1", Status: "active", LastServiceDate: "2026-01-01", ServiceIntervalDays: 30,
	})
	seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "ИБП", SerialNumber: "SN-2", Status: "maintenance", LastServiceDate: "2026-03-01", ServiceIntervalDays: 30,
	})
	seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Кондиционер", SerialNumber: "SN-3", Status: "inactive",
	})
	// Второй maintenance с более ранней датой обслуживания должен встать
	// выше первого внутри своей группы.
	seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Коммутатор", SerialNumber: "SN-4", Status: "maintenance", LastServiceDate: "2026-01-01", ServiceIntervalDays: 30,
	})

	list, err := svc.GetEquipments(ctx, utils.ListOptions{SortMode: "status_ops"})
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Коммутатор", list[0].Name)
	assert.Equal(t, "ИБП", list[1].Name)
	assert.Equal(t, "Кондиционер", list[2].Name)
	assert.Equal(t, "Сервер", list[3].Name)
}

func TestGetEquipments_SortNextServiceAsc(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Поздний", SerialNumber: "SN-1", NextServiceDate: "2026-09-01",
	})
	seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Без даты", SerialNumber: "SN-2",
	})
	seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Ранний", SerialNumber: "SN-3", NextServiceDate: "2026-06-01",
	})

	list, err := svc.GetEquipments(ctx, utils.ListOptions{SortMode: "next_service_asc"})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ранний", list[0].Name)
	assert.Equal(t, "Поздний", list[1].Name)
	// Записи без вычислимой даты всегда в конце.
	assert.Equal(t, "Без даты", list[2].Name)
}

func TestGetEquipments_FallbackOnPrimaryQueryFailure(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := actorCtx()

	seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SN-1"})
	seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "ИБП", SerialNumber: "SN-2"})

	repo.listErr = errors.New("нет индекса")

	list, err := svc.GetEquipments(ctx, utils.ListOptions{SortMode: "name_asc"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ИБП", list[0].Name)
}

// ---------- Создание ----------

func TestCreateEquipment_Defaults(t *testing.T) {
	svc, _, _, eventRepo := newTestService()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name:            "Сервер",
		SerialNumber:    "SRV-001",
		LastServiceDate: "2025-07-15",
	})

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "active", e.Status)
	assert.Equal(t, 180, e.ServiceIntervalDays)
	assert.Equal(t, "2026-01-11", e.NextServiceDate.String)
	assert.Equal(t, uint64(7), e.CreatedBy)
	assert.Equal(t, "admin@equipment-tracker.local", e.CreatedByEmail.String)

	require.Len(t, eventRepo.events, 1)
	assert.Equal(t, "created", eventRepo.events[0].EventType)
	assert.Equal(t, "SRV-001", eventRepo.events[0].Metadata["serial_number"])
}

func TestCreateEquipment_ExplicitNextServiceWins(t *testing.T) {
	svc, _, _, _ := newTestService()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name:            "Сервер",
		SerialNumber:    "SRV-001",
		LastServiceDate: "2025-07-15",
		NextServiceDate: "2026-03-01",
	})

	assert.Equal(t, "2026-03-01", e.NextServiceDate.String)
}

func TestCreateEquipment_SerialConflict(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SRV-001"})

	_, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "Клон", SerialNumber: "SRV-001"})
	assert.ErrorIs(t, err, apperrors.ErrSerialConflict)
}

func TestCreateEquipment_ArchivedSerialReusable(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	old := seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Старый сервер", SerialNumber: "SRV-001"})
	require.NoError(t, svc.ArchiveEquipment(ctx, old.ID))

	// Серийник архивной записи свободен для новой.
	_, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "Новый сервер", SerialNumber: "SRV-001"})
	assert.NoError(t, err)
}

func TestCreateEquipment_RequiresActor(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SRV-001"})
	assert.ErrorIs(t, err, apperrors.ErrUserIDNotFoundInContext)
}

// ---------- Обновление ----------

func TestUpdateEquipment_RecomputesNextService(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Сервер", SerialNumber: "SRV-001", ServiceIntervalDays: 90,
	})

	updated, err := svc.UpdateEquipment(ctx, e.ID, dto.UpdateEquipmentDTO{
		LastServiceDate: strPtr("2026-02-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-02", updated.NextServiceDate.String)
}

func TestUpdateEquipment_ExplicitNextServiceNotOverwritten(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Сервер", SerialNumber: "SRV-001", ServiceIntervalDays: 90,
	})

	updated, err := svc.UpdateEquipment(ctx, e.ID, dto.UpdateEquipmentDTO{
		LastServiceDate: strPtr("2026-02-01"),
		NextServiceDate: strPtr("2026-12-31"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", updated.NextServiceDate.String)
}

func TestUpdateEquipment_PreservesUntouchedFields(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Сервер", SerialNumber: "SRV-001", Owner: strPtr("ИТ-отдел"),
	})

	updated, err := svc.UpdateEquipment(ctx, e.ID, dto.UpdateEquipmentDTO{
		Location: strPtr("Серверная"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Сервер", updated.Name)
	assert.Equal(t, "ИТ-отдел", updated.Owner.String)
	assert.Equal(t, "Серверная", updated.Location.String)
}

func TestUpdateEquipment_SerialConflict(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SRV-001"})
	other := seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "ИБП", SerialNumber: "UPS-001"})

	_, err := svc.UpdateEquipment(ctx, other.ID, dto.UpdateEquipmentDTO{SerialNumber: strPtr("SRV-001")})
	assert.ErrorIs(t, err, apperrors.ErrSerialConflict)

	// Смена интервала без смены серийника конфликтом не считается.
	_, err = svc.UpdateEquipment(ctx, other.ID, dto.UpdateEquipmentDTO{ServiceIntervalDays: intPtr(60)})
	assert.NoError(t, err)
}

func TestUpdateEquipment_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.UpdateEquipment(actorCtx(), "нет-такого", dto.UpdateEquipmentDTO{Name: strPtr("X")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// ---------- Архив ----------

func TestArchiveUnarchive_Idempotent(t *testing.T) {
	svc, repo, _, eventRepo := newTestService()
	ctx := actorCtx()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SRV-001"})
	eventsBefore := len(eventRepo.events)

	require.NoError(t, svc.ArchiveEquipment(ctx, e.ID))
	assert.True(t, repo.items[e.ID].IsArchived())
	assert.Len(t, eventRepo.events, eventsBefore+1)
	assert.Equal(t, "archived", eventRepo.events[eventsBefore].EventType)

	// Повторная архивация — no-op без нового события.
	require.NoError(t, svc.ArchiveEquipment(ctx, e.ID))
	assert.Len(t, eventRepo.events, eventsBefore+1)

	require.NoError(t, svc.UnarchiveEquipment(ctx, e.ID))
	assert.False(t, repo.items[e.ID].IsArchived())
	assert.Len(t, eventRepo.events, eventsBefore+2)

	require.NoError(t, svc.UnarchiveEquipment(ctx, e.ID))
	assert.Len(t, eventRepo.events, eventsBefore+2)
}

func TestArchiveEquipment_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()
	assert.ErrorIs(t, svc.ArchiveEquipment(actorCtx(), "нет-такого"), apperrors.ErrNotFound)
}

// ---------- Обслуживание ----------

func TestAddMaintenanceRecord(t *testing.T) {
	svc, repo, maintenanceRepo, eventRepo := newTestService()
	ctx := actorCtx()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{
		Name: "Сервер", SerialNumber: "SRV-001", ServiceIntervalDays: 90,
	})

	record, err := svc.AddMaintenanceRecord(ctx, e.ID, dto.CreateMaintenanceDTO{
		Date: "2026-02-01",
		Type: "preventive",
	})
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, e.ID, record.EquipmentID)
	require.Len(t, maintenanceRepo.records, 1)

	// Родительская запись обновлена той же операцией.
	parent := repo.items[e.ID]
	assert.Equal(t, "2026-02-01", parent.LastServiceDate.String)
	assert.Equal(t, "2026-05-02", parent.NextServiceDate.String)

	last := eventRepo.events[len(eventRepo.events)-1]
	assert.Equal(t, "maintenance-added", last.EventType)
	assert.Equal(t, "2026-05-02", last.Metadata["next_service_date"])
}

func TestAddMaintenanceRecord_InvalidDate(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SRV-001"})

	_, err := svc.AddMaintenanceRecord(ctx, e.ID, dto.CreateMaintenanceDTO{Date: "01.02.2026", Type: "preventive"})
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestAddMaintenanceRecord_ParentNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.AddMaintenanceRecord(actorCtx(), "нет-такого", dto.CreateMaintenanceDTO{Date: "2026-02-01", Type: "corrective"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetMaintenanceRecordsAndEvents_RequireParent(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := actorCtx()

	_, err := svc.GetMaintenanceRecords(ctx, "нет-такого")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetEquipmentEvents(ctx, "нет-такого")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// ---------- Удаление ----------

func TestDeleteEquipment(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := actorCtx()

	e := seedEquipment(t, svc, dto.CreateEquipmentDTO{Name: "Сервер", SerialNumber: "SRV-001"})

	require.NoError(t, svc.DeleteEquipment(ctx, e.ID))
	assert.Empty(t, repo.items)

	assert.ErrorIs(t, svc.DeleteEquipment(ctx, e.ID), apperrors.ErrNotFound)
}
