package exceptions

import (
	"medilink-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationErrorMessages = map[string]string{
	"required": "is required",
	"gt":       "must be greater than %s",
	"url":      "must be a valid URL",
	"max":      "must be at most %s characters",
}

var validationTagsWithParams = map[string]bool{
	"gt":  true,
	"max": true,
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		tag := firstErr.Tag()
		customMessage, ok := validationErrorMessages[tag]
		if !ok {
			customMessage = "is invalid"
		}
		if validationTagsWithParams[tag] {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
		return fieldName + " " + customMessage
	}
	return constvars.ErrClientCannotProcessRequest
}
