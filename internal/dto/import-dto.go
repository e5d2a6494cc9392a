package dto

// ImportResultDTO — итог импорта оборудования из Excel-файла.
type ImportResultDTO struct {
	Created int      `json:"created"`
	Skipped []string `json:"skipped,omitempty"`
}
