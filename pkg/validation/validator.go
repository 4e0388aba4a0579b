package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags used by request structs.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("nonblank", "required,min=1")
	}
}

// ToDetails converts binding and domain validation errors into a
// map[field]message suitable for the API error field.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return map[string]string{ve.Field: ve.Reason}
	}

	if errors.Is(err, io.EOF) {
		return map[string]string{"payload": "empty body"}
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "nonblank":
		return "is required"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("validation failed for '%s'", fe.Tag())
	}
}
