package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"equipment-tracker/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, event *entities.EquipmentEvent) error
	FindByEquipmentID(ctx context.Context, equipmentID string) ([]entities.EquipmentEvent, error)
}

type EventRepository struct {
	storage *pgxpool.Pool
}

func NewEventRepository(storage *pgxpool.Pool) EventRepositoryInterface {
	return &EventRepository{storage: storage}
}

func (r *EventRepository) CreateInTx(ctx context.Context, tx pgx.Tx, event *entities.EquipmentEvent) error {
	var metadata []byte
	if len(event.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("сериализация metadata события: %w", err)
		}
	}

	query := `
		INSERT INTO equipment_events (equipment_id, event_type, message, metadata, created_by, created_by_email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return tx.QueryRow(ctx, query,
		event.EquipmentID, event.EventType, event.Message, metadata,
		event.CreatedBy, event.CreatedByEmail,
	).Scan(&event.ID, &event.CreatedAt)
}

// FindByEquipmentID возвращает журнал в хронологическом порядке.
func (r *EventRepository) FindByEquipmentID(ctx context.Context, equipmentID string) ([]entities.EquipmentEvent, error) {
	query := `
		SELECT id, equipment_id, event_type, message, metadata, created_by, created_by_email, created_at
		FROM equipment_events
		WHERE equipment_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entities.EquipmentEvent
	for rows.Next() {
		var ev entities.EquipmentEvent
		var metadata []byte
		if err := rows.Scan(
			&ev.ID, &ev.EquipmentID, &ev.EventType, &ev.Message, &metadata,
			&ev.CreatedBy, &ev.CreatedByEmail, &ev.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &ev.Metadata); err != nil {
				return nil, fmt.Errorf("десериализация metadata события %d: %w", ev.ID, err)
			}
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
