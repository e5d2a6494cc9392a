package repositories

import (
	"context"
	"errors"
	"fmt"

	"equipment-tracker/internal/entities"
	apperrors "equipment-tracker/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentTable = "equipments"

const equipmentFields = `id, name, serial_number, status,
	purchase_date, last_service_date, next_service_date, service_interval_days,
	owner, location, created_at, updated_at,
	created_by, created_by_email, updated_by, updated_by_email,
	archived_at, archived_by, archived_by_email`

type EquipmentRepositoryInterface interface {
	// GetEquipments возвращает ВСЕ записи без фильтра по архиву:
	// различать «никогда не архивировалось» и «поле отсутствует» на
	// стороне хранилища нельзя, поэтому фильтрует сервис в памяти.
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	// GetEquipmentsUnordered — запасной путь: плоская выборка без
	// ORDER BY на случай отказа основного запроса.
	GetEquipmentsUnordered(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error)
	ActiveSerialExistsInTx(ctx context.Context, tx pgx.Tx, serial string, excludeID string) (bool, error)
	CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error
	UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error
	ArchiveInTx(ctx context.Context, tx pgx.Tx, id string, actorID uint64, actorEmail string) error
	UnarchiveInTx(ctx context.Context, tx pgx.Tx, id string, actorID uint64, actorEmail string) error
	UpdateServiceDatesInTx(ctx context.Context, tx pgx.Tx, id string, lastService, nextService string, actorID uint64, actorEmail string) error
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipmentRow(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Status,
		&e.PurchaseDate, &e.LastServiceDate, &e.NextServiceDate, &e.ServiceIntervalDays,
		&e.Owner, &e.Location, &e.CreatedAt, &e.UpdatedAt,
		&e.CreatedBy, &e.CreatedByEmail, &e.UpdatedBy, &e.UpdatedByEmail,
		&e.ArchivedAt, &e.ArchivedBy, &e.ArchivedByEmail,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) collectEquipments(ctx context.Context, query string, args ...any) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		e, err := scanEquipmentRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := sq.Select(equipmentFields).
		From(equipmentTable).
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectEquipments(ctx, query, args...)
}

func (r *EquipmentRepository) GetEquipmentsUnordered(ctx context.Context) ([]entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", equipmentFields, equipmentTable)
	return r.collectEquipments(ctx, query)
}

func (r *EquipmentRepository) findByQuerier(ctx context.Context, q Querier, id string, forUpdate bool) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentFields, equipmentTable)
	if forUpdate {
		query += " FOR UPDATE"
	}

	e, err := scanEquipmentRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return r.findByQuerier(ctx, r.storage, id, false)
}

func (r *EquipmentRepository) FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error) {
	return r.findByQuerier(ctx, tx, id, true)
}

// ActiveSerialExistsInTx проверяет занятость серийного номера среди
// НЕархивных записей: серийник архивированного актива можно переиспользовать.
func (r *EquipmentRepository) ActiveSerialExistsInTx(ctx context.Context, tx pgx.Tx, serial string, excludeID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS(
			SELECT 1 FROM %s
			WHERE serial_number = $1 AND archived_at IS NULL AND id <> $2
		)`, equipmentTable)

	var exists bool
	if err := tx.QueryRow(ctx, query, serial, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EquipmentRepository) CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, name, serial_number, status,
			purchase_date, last_service_date, next_service_date, service_interval_days,
			owner, location, created_by, created_by_email, updated_by, updated_by_email
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`, equipmentTable)

	return tx.QueryRow(ctx, query,
		e.ID, e.Name, e.SerialNumber, e.Status,
		e.PurchaseDate, e.LastServiceDate, e.NextServiceDate, e.ServiceIntervalDays,
		e.Owner, e.Location, e.CreatedBy, e.CreatedByEmail, e.UpdatedBy, e.UpdatedByEmail,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *EquipmentRepository) UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, serial_number = $2, status = $3,
			purchase_date = $4, last_service_date = $5, next_service_date = $6,
			service_interval_days = $7, owner = $8, location = $9,
			updated_by = $10, updated_by_email = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $12
		RETURNING updated_at`, equipmentTable)

	err := tx.QueryRow(ctx, query,
		e.Name, e.SerialNumber, e.Status,
		e.PurchaseDate, e.LastServiceDate, e.NextServiceDate,
		e.ServiceIntervalDays, e.Owner, e.Location,
		e.UpdatedBy, e.UpdatedByEmail, e.ID,
	).Scan(&e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return err
}

func (r *EquipmentRepository) ArchiveInTx(ctx context.Context, tx pgx.Tx, id string, actorID uint64, actorEmail string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET archived_at = CURRENT_TIMESTAMP, archived_by = $1, archived_by_email = $2,
			updated_by = $1, updated_by_email = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, equipmentTable)

	result, err := tx.Exec(ctx, query, actorID, actorEmail, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) UnarchiveInTx(ctx context.Context, tx pgx.Tx, id string, actorID uint64, actorEmail string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET archived_at = NULL, archived_by = NULL, archived_by_email = NULL,
			updated_by = $1, updated_by_email = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, equipmentTable)

	result, err := tx.Exec(ctx, query, actorID, actorEmail, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) UpdateServiceDatesInTx(ctx context.Context, tx pgx.Tx, id string, lastService, nextService string, actorID uint64, actorEmail string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET last_service_date = $1, next_service_date = $2,
			updated_by = $3, updated_by_email = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5`, equipmentTable)

	result, err := tx.Exec(ctx, query, lastService, nextService, actorID, actorEmail, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
