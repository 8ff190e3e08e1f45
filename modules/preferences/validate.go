package preferences

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meshjs/dashboard/handler"
)

// UpdateRequest is the PUT body.
type UpdateRequest struct {
	Theme     string   `json:"theme" validate:"required,oneof=light dark system"`
	Watchlist []string `json:"watchlist" validate:"max=50,dive,required,max=128"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toValidationError maps validator failures onto handler.ValidationError
// keyed by JSON field name. Errors of any other kind are returned unchanged.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := handler.NewValidationError()
	for _, fe := range verrs {
		out.Add(fieldName(fe), message(fe))
	}
	return out
}

// fieldName turns "UpdateRequest.watchlist[3]" into "watchlist[3]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
