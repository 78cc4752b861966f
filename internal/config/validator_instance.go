package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report fields by their YAML keys
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("panel_kind", func(fl validator.FieldLevel) bool {
			return playground.PanelKind(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("spring", func(fl validator.FieldLevel) bool {
			return playground.SpringSelection(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
			return playground.Direction(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("anchor", func(fl validator.FieldLevel) bool {
			return playground.Anchor(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
