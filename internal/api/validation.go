package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// BindError turns a ShouldBindJSON failure into a 400 response. Validator
// errors get a per-field breakdown, everything else the raw message.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]ValidationError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, ValidationError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: errorMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": details,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func errorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return err.Field() + " must be a valid email address"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "len":
		return err.Field() + " must have exactly " + err.Param() + " entries"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "url":
		return err.Field() + " must be a valid URL"
	default:
		return err.Field() + " is invalid"
	}
}
