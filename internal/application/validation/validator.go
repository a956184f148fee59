// Package validation turns posted form values into domain.SelectionResult.
// Every validator here is pure: same input, same result, no I/O.
package validation

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// Struct tags used by the form types:
//
//	form   the posted field name, reported as ValidationError.Field
//	msg    comma separated tag=MessageId pairs, reported as ValidationError.ID
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("form")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && n > 0
	})
	_ = v.RegisterValidation("belowint32", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		return err == nil && n < math.MaxInt32
	})
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, ok := parseDecimal(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		n, ok := parseDecimal(fl.Field().String())
		return ok && n >= 0
	})
	return v
}

// plainDecimal is digits with an optional fraction. It keeps Inf, NaN and hex
// floats away from ParseFloat.
var plainDecimal = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

func parseDecimal(s string) (float64, bool) {
	if !plainDecimal.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// check runs the struct tags of form and reports at most one error per field,
// in field declaration order.
func check(form interface{}) []domain.ValidationError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []domain.ValidationError{{Field: "form", ID: "FormInvalid"}}
	}

	t := reflect.Indirect(reflect.ValueOf(form)).Type()
	out := make([]domain.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		sf, _ := t.FieldByName(fe.StructField())
		out = append(out, domain.ValidationError{
			Field: fe.Field(),
			ID:    messageID(sf, fe.Tag()),
		})
	}
	return out
}

func messageID(sf reflect.StructField, tag string) string {
	for _, pair := range strings.Split(sf.Tag.Get("msg"), ",") {
		k, v, ok := strings.Cut(pair, "=")
		if ok && k == tag {
			return v
		}
	}
	name := sf.Tag.Get("form")
	if name == "" {
		name = sf.Name
	}
	return capitalise(name) + "Invalid"
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// trim normalises a posted value; whitespace-only counts as blank.
func trim(s string) string {
	return strings.TrimSpace(s)
}
