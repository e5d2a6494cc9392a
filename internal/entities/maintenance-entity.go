package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaintenanceRecord — неизменяемая запись истории обслуживания.
// Создаётся один раз, никогда не обновляется и не удаляется.
type MaintenanceRecord struct {
	ID             uint64      `json:"id" db:"id"`
	EquipmentID    string      `json:"equipment_id" db:"equipment_id"`
	Date           string      `json:"date" db:"date"`
	Type           string      `json:"type" db:"type"`
	Notes          null.String `json:"notes" db:"notes"`
	CreatedBy      uint64      `json:"created_by" db:"created_by"`
	CreatedByEmail null.String `json:"created_by_email" db:"created_by_email"`
	CreatedAt      *time.Time  `json:"created_at" db:"created_at"`
}
