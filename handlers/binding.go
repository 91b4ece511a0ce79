package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"quizhub/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report JSON field names instead of Go field names in binding errors.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingError turns a ShouldBindJSON failure into a validation error with
// one message per offending field.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: invalid request body", services.ErrValidation)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", services.ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// optionalQuery treats an absent or blank parameter as not supplied.
func optionalQuery(c *gin.Context, key string) (string, bool) {
	raw, ok := c.GetQuery(key)
	raw = strings.TrimSpace(raw)
	return raw, ok && raw != ""
}

// queryID parses a required positive integer id from the query string.
func queryID(c *gin.Context, key string) (uint, error) {
	raw, ok := optionalQuery(c, key)
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", services.ErrValidation, key)
	}
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", services.ErrValidation, key)
	}
	return uint(id), nil
}
