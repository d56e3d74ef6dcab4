package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BindJSON decodes the request body into dst and runs struct validation.
// Failures come back as 400 AppErrors with per-field details.
func BindJSON(r *http.Request, dst any) error {
	if r == nil || r.Body == nil {
		return NewAppError("BAD_REQUEST", "request body is required", http.StatusBadRequest, nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return NewAppError("BAD_REQUEST", "request body is required", http.StatusBadRequest, nil)
		}
		return NewAppError("BAD_REQUEST", "invalid JSON payload", http.StatusBadRequest, err)
	}
	return Validate(dst)
}

// Validate runs struct validation on v and converts failures into a 400
// AppError listing the offending fields.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewAppError("BAD_REQUEST", "invalid payload", http.StatusBadRequest, err)
	}
	fields := make([]map[string]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, map[string]string{
			"field": fieldName(fe),
			"rule":  fe.Tag(),
		})
	}
	appErr := NewAppError("VALIDATION_ERROR", "missing or invalid fields", http.StatusBadRequest, err)
	appErr.Details = map[string]any{"fields": fields}
	return appErr
}

func fieldName(fe validator.FieldError) string {
	// Strip the leading struct name from the namespace for readable details.
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}
