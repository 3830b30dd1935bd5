package reports

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func submitValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		// Report json names so messages line up with the form fields.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("leak_category", func(fl validator.FieldLevel) bool {
			_, ok := ParseCategory(fl.Field().String())
			return ok
		})
		validate = v
	})
	return validate
}

// ValidateSubmission checks every field and returns all failures at once.
func ValidateSubmission(req *SubmitRequest) error {
	err := submitValidator().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	seen := make(map[string]bool)
	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		// one message per field
		if seen[field] {
			continue
		}
		seen[field] = true
		out.Fields = append(out.Fields, FieldError{Field: field, Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without_all":
		return "an address or a coordinate pair is required"
	case "required_with":
		return "latitude and longitude must be given together"
	case "email":
		return "must be a valid email address"
	case "latitude":
		return "must be between -90 and 90"
	case "longitude":
		return "must be between -180 and 180"
	case "url":
		return "must be a valid URL"
	case "leak_category":
		names := make([]string, len(Categories))
		for i, c := range Categories {
			names[i] = string(c)
		}
		return "must be one of: " + strings.Join(names, ", ")
	case "max":
		return fmt.Sprintf("must be at most %s long", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
