package dto

import (
	"equipment-tracker/internal/entities"

	"github.com/aarondl/null/v8"
)

type EventDTO struct {
	ID             uint64                 `json:"id"`
	EquipmentID    string                 `json:"equipment_id"`
	EventType      string                 `json:"event_type"`
	Message        string                 `json:"message"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	CreatedBy      uint64                 `json:"created_by"`
	CreatedByEmail null.String            `json:"created_by_email"`
	CreatedAt      string                 `json:"created_at"`
}

func NewEventDTO(ev *entities.EquipmentEvent) EventDTO {
	return EventDTO{
		ID:             ev.ID,
		EquipmentID:    ev.EquipmentID,
		EventType:      ev.EventType,
		Message:        ev.Message,
		Metadata:       ev.Metadata,
		CreatedBy:      ev.CreatedBy,
		CreatedByEmail: ev.CreatedByEmail,
		CreatedAt:      formatTimestamp(ev.CreatedAt),
	}
}

func NewEventDTOs(list []entities.EquipmentEvent) []EventDTO {
	out := make([]EventDTO, 0, len(list))
	for i := range list {
		out = append(out, NewEventDTO(&list[i]))
	}
	return out
}
