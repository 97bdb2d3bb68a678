// Package validation builds the validator shared by the HTTP layer and the
// record store boundary.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

// New returns a validator that reports JSON field names and understands
// domain.ProductID.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// A zero id renders as "" and fails "required".
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		id, ok := field.Interface().(domain.ProductID)
		if !ok {
			return nil
		}
		return id.String()
	}, domain.ProductID{})

	return v
}
