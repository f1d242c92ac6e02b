package httpx

import (
	"errors"
	"fmt"
	"strings"

	"bookbrowser/internal/book"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	mustRegister(validate, "category", validateCategory)
	mustRegister(validate, "page_size", validatePageSize)
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

func validateCategory(fl validator.FieldLevel) bool {
	return book.IsCategory(fl.Field().String())
}

func validatePageSize(fl validator.FieldLevel) bool {
	return book.IsPageSize(int(fl.Field().Int()))
}

// ValidateStruct checks s against its `validate` tags and returns one
// ErrorDetail per failing field, or nil.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	var details []ErrorDetail
	for _, fe := range verrs {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min", "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "max", "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "category":
			message = fmt.Sprintf("%s must be one of %s", field, strings.Join(book.Categories(), ", "))
		case "page_size":
			message = fmt.Sprintf("%s must be one of %s", field, joinInts(book.PageSizes()))
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{
			Field:   toSnake(field),
			Message: message,
		})
	}

	return details
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

// toSnake converts a Go field name like PageSize to page_size.
func toSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
