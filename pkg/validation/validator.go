package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator — обёртка для использования в Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate реализует интерфейс echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New создаёт и настраивает валидатор.
func New() *CustomValidator {
	v := validator.New()

	// Если правило критично и не зарегистрировалось — паникуем,
	// сервер без валидации стартовать не должен.
	if err := registerRules(v); err != nil {
		panic("ошибка регистрации валидаторов: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
