package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

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

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validate runs struct tag validation and reports failures as a
// VALIDATION_ERROR AppError listing every offending field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewAppError("VALIDATION_ERROR", "invalid request", http.StatusBadRequest, err)
	}
	root := rootName(v)
	details := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, FieldError{Field: fieldPath(root, fe), Rule: fe.Tag(), Param: fe.Param()})
	}
	return BadRequest("VALIDATION_ERROR", fieldMessage(details[0])).WithDetails(details)
}

// DecodeJSON decodes the request body into dst and validates it.
func DecodeJSON(r *http.Request, dst any) error {
	if err := Decode(r, dst); err != nil {
		return err
	}
	return Validate(dst)
}

// Decode decodes the request body into dst without validating it.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewAppError("PAYLOAD_TOO_LARGE", "request body too large", http.StatusRequestEntityTooLarge, err)
		}
		return NewAppError("BAD_REQUEST", "invalid request payload", http.StatusBadRequest, err)
	}
	return nil
}

// rootName is the type name validator puts in front of every namespace.
// Anonymous structs have none.
func rootName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

func fieldPath(root string, fe validator.FieldError) string {
	ns := fe.Namespace()
	if root == "" {
		return ns
	}
	if rest, ok := strings.CutPrefix(ns, root+"."); ok {
		return rest
	}
	return fe.Field()
}

func fieldMessage(fe FieldError) string {
	switch fe.Rule {
	case "required", "required_without", "required_if":
		return fe.Field + " is required"
	case "min", "gte":
		return fe.Field + " must be at least " + fe.Param
	default:
		return fe.Field + " is invalid"
	}
}
