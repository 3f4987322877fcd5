package handler

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pitchside/pitchside/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator with the domain tags
// registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// itemkind accepts only the catalog entry kinds.
		_ = validate.RegisterValidation("itemkind", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseItemKind(fl.Field().String())
			return err == nil
		})

		// attribute accepts only the known profile attribute names.
		_ = validate.RegisterValidation("attribute", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseAttributeName(fl.Field().String())
			return err == nil
		})
	})
	return validate
}
