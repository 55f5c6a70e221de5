package http

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"mood-filter/internal/domain"
)

var registerValidatorsOnce sync.Once

// RegisterValidators agrega el tag `category` al validador de gin.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("category", validateCategory)
	})
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.Category(fl.Field().String()).IsValid()
}
