package content

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"homepage/internal/models"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return models.Platform(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("tileurl", func(fl validator.FieldLevel) bool {
		u := fl.Field().String()
		return u == "#" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
	})

	return v
}
