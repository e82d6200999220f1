package attendance

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/campusmark/rollcall/core"
)

var (
	statusTag  = "status"
	statusText = "must be one of: " + joinStatuses()
)

// InitValidators registers attendance-specific validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}

func statusValidation(fl validator.FieldLevel) bool {
	return Status(fl.Field().String()).Valid()
}

func joinStatuses() string {
	vals := make([]string, len(Statuses))
	for i, s := range Statuses {
		vals[i] = string(s)
	}
	return strings.Join(vals, ", ")
}
