// Package validator decodes and validates JSON request bodies. Field errors
// are keyed by their JSON names so clients can attach them to form inputs.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("money", validateMoney); err != nil {
		panic(err)
	}
	return v
}

// validateMoney accepts an amount that passes currency.CheckAmount, held in a
// string-kinded field such as json.Number. Empty values are left to "required".
func validateMoney(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	d, err := decimal.NewFromString(s)
	return err == nil && currency.CheckAmount(d) == nil
}

// Validate runs the struct's validate tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors maps each failing field's JSON name to a message.
// Errors that are not validation errors yield an empty map.
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return out
	}
	for _, e := range ve {
		out[e.Field()] = fieldMessage(e)
	}
	return out
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "money":
		return fmt.Sprintf("Must be a non-negative amount below %s with at most %d decimal places",
			currency.MaxAmount.String(), currency.FractionDigits)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "url":
		return "Must be a valid URL"
	case "startswith":
		return fmt.Sprintf("Must start with %q", e.Param())
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// ValidateRequest decodes the JSON body into T and validates it. On failure
// it writes the response and returns false:
//
//   - 413 when the body exceeds the request's MaxBytesReader limit
//   - 400 {"error":"Invalid JSON"} when the body does not decode into T
//   - 422 {"error":"Validation failed","fields":{...}} when a tag fails
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}
