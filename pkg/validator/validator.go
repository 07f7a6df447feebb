package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// TagTranscriptFormat accepts any hint understood by entities.ParseTranscriptFormat
const TagTranscriptFormat = "transcript_format"

// CustomValidator implements echo.Validator. Field names in errors follow
// the json or query tag so they match what the client sent.
type CustomValidator struct {
	v *validator.Validate
}

// New creates a CustomValidator with the transcript rules registered
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation(TagTranscriptFormat, func(fl validator.FieldLevel) bool {
		_, err := entities.ParseTranscriptFormat(fl.Field().String())
		return err == nil
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// FieldErrors maps each failing field to the rule it broke. Errors that did
// not come from struct validation yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "query", "form"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
