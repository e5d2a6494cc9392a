package dto

// ServiceOverviewDTO — сводка по графику обслуживания активного парка.
type ServiceOverviewDTO struct {
	Overdue     int            `json:"overdue"`
	DueSoon     int            `json:"due_soon"`
	Ok          int            `json:"ok"`
	Unknown     int            `json:"unknown"`
	ByStatus    map[string]int `json:"by_status"`
	GeneratedAt string         `json:"generated_at"`
}
