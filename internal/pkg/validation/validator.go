package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts validator/v10 to echo.Validator
type EchoValidator struct {
	validate *validator.Validate
}

// NewEchoValidator creates a validator that reports fields by their JSON names
func NewEchoValidator() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &EchoValidator{validate: v}
}

// Validate checks i against its struct tags and returns a readable error listing every failing field
func (ev *EchoValidator) Validate(i interface{}) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, translateError(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	"latitude":  "%s must be a valid latitude (-90 to 90)",
	"longitude": "%s must be a valid longitude (-180 to 180)",
}

func translateError(fe validator.FieldError) string {
	field := trimRoot(fe.Namespace())
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, field)
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// trimRoot drops the struct type name from a namespace such as CreateTripRequest.from.latitude
func trimRoot(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
