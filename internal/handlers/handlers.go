// Package handlers implements the HTTP boundary: typed request structs per
// operation, validated on entry, with service errors mapped to status codes.
package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validateStruct runs struct validation and flattens failures into a
// field → message map for the error response.
func validateStruct(v *validator.Validate, s interface{}) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return errorMessages
}
