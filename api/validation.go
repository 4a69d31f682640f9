package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators reports JSON field names in validation errors and adds
// the notblank rule.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// bindJSON decodes and validates the request body into req, writing a 400
// response and returning false on failure.
func bindJSON(c *gin.Context, req any) bool {
	registerValidators()
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var (
		vErrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
	)
	if errors.As(err, &vErrs) || errors.As(err, &typeErr) {
		writeError(c, err)
	} else {
		badRequest(c, "detail", "malformed request body: "+err.Error())
	}
	return false
}

func fieldErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		field := e.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		out[field] = fieldMessage(e)
	}
	return out
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "notblank":
		return "this field may not be blank"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gtfield":
		return fmt.Sprintf("must be after %s", strings.ToLower(e.Param()))
	case "nefield":
		return fmt.Sprintf("must differ from %s", strings.ToLower(e.Param()))
	default:
		return fmt.Sprintf("failed on the %q rule", e.Tag())
	}
}
