package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// EquipmentEvent — запись журнала аудита оборудования (append-only).
type EquipmentEvent struct {
	ID             uint64                 `json:"id" db:"id"`
	EquipmentID    string                 `json:"equipment_id" db:"equipment_id"`
	EventType      string                 `json:"event_type" db:"event_type"`
	Message        string                 `json:"message" db:"message"`
	Metadata       map[string]interface{} `json:"metadata" db:"metadata"`
	CreatedBy      uint64                 `json:"created_by" db:"created_by"`
	CreatedByEmail null.String            `json:"created_by_email" db:"created_by_email"`
	CreatedAt      *time.Time             `json:"created_at" db:"created_at"`
}
