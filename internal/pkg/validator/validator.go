package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"nerdspace/internal/pkg/timeslot"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// "clock" accepts HH:MM times, including the 24:00 end-of-day sentinel.
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := timeslot.Parse(fl.Field().String())
		return err == nil
	})
}

// Validate returns the failed rule per field, or nil when v passes. The map
// feeds the error envelope's details so clients see every bad field at once.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
