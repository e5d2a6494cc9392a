package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) error {
	return v.RegisterValidation("date_format", isCalendarDate)
}

// isCalendarDate проверяет формат "YYYY-MM-DD" (формат всех календарных
// дат оборудования). Пустые значения пропускают omitempty-теги.
func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
