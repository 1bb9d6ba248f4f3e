package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tattoohub/internal/pkg/response"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report JSON field names, not Go ones
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate struct fields. Returns nil when v is valid.
func Validate(v any) []response.ErrorItem {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []response.ErrorItem{{Msg: err.Error()}}
	}

	items := make([]response.ErrorItem, 0, len(verrs))
	for _, fe := range verrs {
		items = append(items, response.ErrorItem{
			Msg:   message(fe),
			Param: paramPath(fe),
		})
	}
	return items
}

// BindJSON decodes the body into v and validates it, writing a 400 on failure.
func BindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		response.Write(c, response.Errors(http.StatusBadRequest, "Invalid JSON body"))
		return false
	}
	if items := Validate(v); items != nil {
		response.Write(c, response.New(http.StatusBadRequest, response.ErrorsPayload{Errors: items}))
		return false
	}
	return true
}

func paramPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please include a valid email"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s exceeds the limit of %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
