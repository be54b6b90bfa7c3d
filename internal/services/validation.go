package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"fleet-management/fleetboard/internal/models/dtos"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxDistance is the first value that no longer fits numeric(10,2).
var maxDistance = decimal.New(1, 8)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput runs the struct's validate tags and reports every failing
// field in one ValidationFailure.
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return validationError("invalid input: %v", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe.Field(), fe.Tag(), fe.Param()))
	}
	return validationError("%s", strings.Join(msgs, "; "))
}

// validateValue checks a single patched value against validator rules.
func validateValue(field string, value interface{}, rules string) error {
	err := validate.Var(value, rules)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return validationError("%s", describeFieldError(field, fieldErrs[0].Tag(), fieldErrs[0].Param()))
	}
	return validationError("invalid %s: %v", field, err)
}

func describeFieldError(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

// normalizeDistance rounds to two places and rejects values that are not
// positive afterwards or do not fit the column.
func normalizeDistance(d decimal.Decimal) (decimal.Decimal, error) {
	rounded := d.Round(2)
	if !rounded.IsPositive() {
		return decimal.Decimal{}, validationError("distance must be positive")
	}
	if rounded.GreaterThanOrEqual(maxDistance) {
		return decimal.Decimal{}, validationError("distance must be less than %s", maxDistance.String())
	}
	return rounded, nil
}

func normalizeTime(field string, t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, validationError("%s is required", field)
	}
	return t.UTC(), nil
}

// patchField copies a supplied Optional into patch under column. normalize
// may reject or transform the value. Null is accepted only when nullable.
func patchField[T any](patch map[string]interface{}, column string, f dtos.Optional[T], nullable bool, normalize func(T) (interface{}, error)) error {
	if !f.IsSet() {
		return nil
	}
	if f.IsNull() {
		if !nullable {
			return validationError("%s cannot be null", column)
		}
		patch[column] = nil
		return nil
	}

	v, _ := f.Get()
	if normalize == nil {
		patch[column] = v
		return nil
	}
	out, err := normalize(v)
	if err != nil {
		return err
	}
	patch[column] = out
	return nil
}

// stringRule adapts validator rules for patchField.
func stringRule(column, rules string) func(string) (interface{}, error) {
	return func(v string) (interface{}, error) {
		if err := validateValue(column, v, rules); err != nil {
			return nil, err
		}
		return v, nil
	}
}
