package utils

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Error messages name fields by their json tag
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom validations
	v.RegisterValidation("eventdate", validateEventDate)

	return &Validator{
		validate: v,
	}
}

// Struct validates a form object and converts field errors into the ordered
// message list used by the API.
func (v *Validator) Struct(s interface{}) *apperr.ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.NewValidation(err.Error())
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, messageForField(fieldError))
	}

	return apperr.NewValidation(messages...)
}

func messageForField(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Parameter is mandatory: %s.", err.Field())
	case "eventdate":
		return fmt.Sprintf("Parameter %s should have format dd-MM-yyyy HH:mm.", err.Field())
	case "email":
		return fmt.Sprintf("Parameter %s should be a valid email.", err.Field())
	case "url":
		return fmt.Sprintf("Parameter %s should be a valid url.", err.Field())
	case "min":
		return fmt.Sprintf("Parameter %s should have at least %s characters.", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Parameter %s is invalid.", err.Field())
	}
}

func validateEventDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.EventDateLayout, fl.Field().String())
	return err == nil
}
