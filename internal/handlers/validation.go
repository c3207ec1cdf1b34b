package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CRM record IDs are 15 or 18 character case-sensitive alphanumerics.
var sfidPattern = regexp.MustCompile(`^[a-zA-Z0-9]{15}([a-zA-Z0-9]{3})?$`)

// registerValidations installs custom binding rules on gin's validator.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("sfid", func(fl validator.FieldLevel) bool {
		return sfidPattern.MatchString(fl.Field().String())
	})
}
