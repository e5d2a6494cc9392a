package entities

import (
	"equipment-tracker/pkg/types"

	"github.com/aarondl/null/v8"
)

// Equipment — единица учёта (физический актив).
// Все календарные даты хранятся строками "YYYY-MM-DD"; легаси-записи
// могут не иметь части полей, поэтому почти всё опционально.
type Equipment struct {
	ID                  string      `json:"id" db:"id"`
	Name                string      `json:"name" db:"name"`
	SerialNumber        string      `json:"serial_number" db:"serial_number"`
	Status              string      `json:"status" db:"status"`
	PurchaseDate        null.String `json:"purchase_date" db:"purchase_date"`
	LastServiceDate     null.String `json:"last_service_date" db:"last_service_date"`
	NextServiceDate     null.String `json:"next_service_date" db:"next_service_date"`
	ServiceIntervalDays int         `json:"service_interval_days" db:"service_interval_days"`
	Owner               null.String `json:"owner" db:"owner"`
	Location            null.String `json:"location" db:"location"`

	types.BaseEntity // CreatedAt, UpdatedAt

	CreatedBy      uint64      `json:"created_by" db:"created_by"`
	CreatedByEmail null.String `json:"created_by_email" db:"created_by_email"`
	UpdatedBy      uint64      `json:"updated_by" db:"updated_by"`
	UpdatedByEmail null.String `json:"updated_by_email" db:"updated_by_email"`

	// Архивные поля. Запись активна тогда и только тогда, когда
	// ArchivedAt пуст — NULL в базе нормализует «отсутствует» и «null»
	// из старых выгрузок.
	ArchivedAt      null.Time   `json:"archived_at" db:"archived_at"`
	ArchivedBy      null.Int64  `json:"archived_by" db:"archived_by"`
	ArchivedByEmail null.String `json:"archived_by_email" db:"archived_by_email"`
}

func (e *Equipment) IsArchived() bool {
	return e.ArchivedAt.Valid
}
