package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators teaches gin's validator about decimals (zero counts as
// missing for "required") and makes it report JSON/form field names.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// ValidationMessage turns a binding error into a short client message.
// Missing fields map to required; other failures name the field.
func ValidationMessage(err error, required string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return required
	}
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			return fmt.Sprintf("Invalid value for %s", fe.Field())
		}
	}
	return required
}
