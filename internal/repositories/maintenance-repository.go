package repositories

import (
	"context"

	"equipment-tracker/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaintenanceRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, record *entities.MaintenanceRecord) error
	FindByEquipmentID(ctx context.Context, equipmentID string) ([]entities.MaintenanceRecord, error)
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

// CreateInTx вставляет запись истории обслуживания. Записи неизменяемые,
// UPDATE/DELETE для этой таблицы не существует.
func (r *MaintenanceRepository) CreateInTx(ctx context.Context, tx pgx.Tx, record *entities.MaintenanceRecord) error {
	query := `
		INSERT INTO equipment_maintenance (equipment_id, date, type, notes, created_by, created_by_email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return tx.QueryRow(ctx, query,
		record.EquipmentID, record.Date, record.Type, record.Notes,
		record.CreatedBy, record.CreatedByEmail,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *MaintenanceRepository) FindByEquipmentID(ctx context.Context, equipmentID string) ([]entities.MaintenanceRecord, error) {
	query := `
		SELECT id, equipment_id, date, type, notes, created_by, created_by_email, created_at
		FROM equipment_maintenance
		WHERE equipment_id = $1
		ORDER BY date DESC, id DESC`

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entities.MaintenanceRecord
	for rows.Next() {
		var m entities.MaintenanceRecord
		if err := rows.Scan(
			&m.ID, &m.EquipmentID, &m.Date, &m.Type, &m.Notes,
			&m.CreatedBy, &m.CreatedByEmail, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}
