package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/richxcame/partner-showcase/pkg/i18n"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Get returns the shared validator, configured to report form/json field
// names and to understand the page_lang tag.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
		_ = validate.RegisterValidation("page_lang", func(fl validator.FieldLevel) bool {
			_, ok := i18n.ParseLanguage(fl.Field().String())
			return ok
		})
	})
	return validate
}

// ValidateStruct validates s and converts field failures into a ValidationError
func ValidateStruct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationError(verrs)
	}
	return err
}
