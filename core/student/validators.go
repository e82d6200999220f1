package student

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/campusmark/rollcall/core"
)

var (
	sectionTag  = "section"
	sectionText = "must be one of: " + strings.Join(Sections, ", ")
)

// InitValidators registers student-specific validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(sectionTag, sectionValidation)
	core.RegisterCustomTranslation(validate, translator, sectionTag, sectionText)
}

func sectionValidation(fl validator.FieldLevel) bool {
	val := strings.ToUpper(fl.Field().String())
	for _, s := range Sections {
		if val == s {
			return true
		}
	}
	return false
}
