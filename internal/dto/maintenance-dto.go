package dto

import (
	"equipment-tracker/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateMaintenanceDTO struct {
	Date  string  `json:"date" validate:"required,date_format"`
	Type  string  `json:"type" validate:"required,oneof=preventive corrective"`
	Notes *string `json:"notes,omitempty"`
}

type MaintenanceDTO struct {
	ID             uint64      `json:"id"`
	EquipmentID    string      `json:"equipment_id"`
	Date           string      `json:"date"`
	Type           string      `json:"type"`
	Notes          null.String `json:"notes"`
	CreatedBy      uint64      `json:"created_by"`
	CreatedByEmail null.String `json:"created_by_email"`
	CreatedAt      string      `json:"created_at"`
}

func NewMaintenanceDTO(m *entities.MaintenanceRecord) MaintenanceDTO {
	return MaintenanceDTO{
		ID:             m.ID,
		EquipmentID:    m.EquipmentID,
		Date:           m.Date,
		Type:           m.Type,
		Notes:          m.Notes,
		CreatedBy:      m.CreatedBy,
		CreatedByEmail: m.CreatedByEmail,
		CreatedAt:      formatTimestamp(m.CreatedAt),
	}
}

func NewMaintenanceDTOs(list []entities.MaintenanceRecord) []MaintenanceDTO {
	out := make([]MaintenanceDTO, 0, len(list))
	for i := range list {
		out = append(out, NewMaintenanceDTO(&list[i]))
	}
	return out
}
