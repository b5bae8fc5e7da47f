package webutil

import (
	"fmt"
	"reflect"
	"strings"

	"go_5_flashcard_keep/internal/model"

	"github.com/go-playground/validator/v10"
)

// Validator is the shared validator instance. Field names in error messages
// come from the json tags, so clients see the names they actually sent.
var Validator *validator.Validate

func init() {
	Validator = validator.New()

	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// NewValidationErrorResponse turns validator errors into a single AppError
// carrying the first failing field.
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	first := errs[0]
	message := fmt.Sprintf("Field '%s' failed validation on the '%s' rule.", first.Field(), first.Tag())
	return model.NewAppError("VALIDATION_ERROR", message, first.Field(), model.ErrInvalidInput)
}
