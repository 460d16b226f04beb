package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindingRules adds custom rules to gin's validator engine.
// "phmobile" accepts Philippine mobile numbers (11 digits, "09" prefix).
func RegisterBindingRules() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phmobile", func(fl validator.FieldLevel) bool {
			return IsValidPHMobile(fl.Field().String())
		})
	}
}
