package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate единый инстанс валидатора: кэширует метаданные структур
var validate = validator.New()

// ValidateStruct проверяет DTO по validate-тегам.
// Возвращает ошибку с именем первого непрошедшего поля.
func ValidateStruct(dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return fmt.Errorf("handlers: field %q failed validation rule %q", fe.Field(), fe.Tag())
	}

	return fmt.Errorf("handlers: validate request: %w", err)
}
