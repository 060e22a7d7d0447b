package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/martijn/bizdesk/internal/core/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		r := []rune(f.Name)
		r[0] = unicode.ToLower(r[0])
		return string(r)
	})

	// An unset Money or Date reads as nil so that "required" rejects it.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(domain.Money); ok && m.IsSet() {
			return m.String()
		}
		return nil
	}, domain.Money{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(domain.Date); ok && d.IsSet() {
			return d.String()
		}
		return nil
	}, domain.Date{})

	// money bounds an amount to what every store can hold.
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return true
		}
		m, err := domain.ParseMoney(s)
		return err == nil && m.InRange()
	})

	return v
}

// validateEntity runs struct validation and folds every failure into one
// 400 ServiceError.
func validateEntity(entity interface{}) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return newValidationError(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "money":
			limit := domain.MaxMoney.StringFixed(domain.MoneyScale)
			msgs = append(msgs, fmt.Sprintf("%s must be between -%s and %s", fe.Field(), limit, limit))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return newValidationError(strings.Join(msgs, "; "))
}
