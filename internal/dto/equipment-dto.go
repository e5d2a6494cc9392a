package dto

import (
	"time"

	"equipment-tracker/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name                string  `json:"name" validate:"required"`
	SerialNumber        string  `json:"serial_number" validate:"required"`
	Status              string  `json:"status" validate:"omitempty,oneof=active maintenance inactive"`
	PurchaseDate        string  `json:"purchase_date" validate:"omitempty,date_format"`
	LastServiceDate     string  `json:"last_service_date" validate:"omitempty,date_format"`
	NextServiceDate     string  `json:"next_service_date" validate:"omitempty,date_format"`
	ServiceIntervalDays int     `json:"service_interval_days" validate:"omitempty,gt=0"`
	Owner               *string `json:"owner,omitempty"`
	Location            *string `json:"location,omitempty"`
}

type UpdateEquipmentDTO struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=1"`
	SerialNumber        *string `json:"serial_number,omitempty" validate:"omitempty,min=1"`
	Status              *string `json:"status,omitempty" validate:"omitempty,oneof=active maintenance inactive"`
	PurchaseDate        *string `json:"purchase_date,omitempty" validate:"omitempty,date_format"`
	LastServiceDate     *string `json:"last_service_date,omitempty" validate:"omitempty,date_format"`
	NextServiceDate     *string `json:"next_service_date,omitempty" validate:"omitempty,date_format"`
	ServiceIntervalDays *int    `json:"service_interval_days,omitempty" validate:"omitempty,gt=0"`
	Owner               *string `json:"owner,omitempty"`
	Location            *string `json:"location,omitempty"`
}

type EquipmentDTO struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	SerialNumber        string      `json:"serial_number"`
	Status              string      `json:"status"`
	PurchaseDate        null.String `json:"purchase_date"`
	LastServiceDate     null.String `json:"last_service_date"`
	NextServiceDate     null.String `json:"next_service_date"`
	ServiceIntervalDays int         `json:"service_interval_days"`
	Owner               null.String `json:"owner"`
	Location            null.String `json:"location"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	CreatedBy      uint64      `json:"created_by"`
	CreatedByEmail null.String `json:"created_by_email"`
	UpdatedBy      uint64      `json:"updated_by"`
	UpdatedByEmail null.String `json:"updated_by_email"`

	Archived        bool        `json:"archived"`
	ArchivedAt      *string     `json:"archived_at,omitempty"`
	ArchivedByEmail null.String `json:"archived_by_email,omitempty"`
}

const timestampLayout = "2006-01-02, 15:04:05"

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}

// NewEquipmentDTO собирает ответный DTO из сущности.
func NewEquipmentDTO(e *entities.Equipment) EquipmentDTO {
	out := EquipmentDTO{
		ID:                  e.ID,
		Name:                e.Name,
		SerialNumber:        e.SerialNumber,
		Status:              e.Status,
		PurchaseDate:        e.PurchaseDate,
		LastServiceDate:     e.LastServiceDate,
		NextServiceDate:     e.NextServiceDate,
		ServiceIntervalDays: e.ServiceIntervalDays,
		Owner:               e.Owner,
		Location:            e.Location,
		CreatedAt:           formatTimestamp(e.CreatedAt),
		UpdatedAt:           formatTimestamp(e.UpdatedAt),
		CreatedBy:           e.CreatedBy,
		CreatedByEmail:      e.CreatedByEmail,
		UpdatedBy:           e.UpdatedBy,
		UpdatedByEmail:      e.UpdatedByEmail,
		Archived:            e.IsArchived(),
		ArchivedByEmail:     e.ArchivedByEmail,
	}
	if e.ArchivedAt.Valid {
		formatted := e.ArchivedAt.Time.Format(timestampLayout)
		out.ArchivedAt = &formatted
	}
	return out
}

// NewEquipmentDTOs конвертирует список, сохраняя порядок.
func NewEquipmentDTOs(list []entities.Equipment) []EquipmentDTO {
	out := make([]EquipmentDTO, 0, len(list))
	for i := range list {
		out = append(out, NewEquipmentDTO(&list[i]))
	}
	return out
}
