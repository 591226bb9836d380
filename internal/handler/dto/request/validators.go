package request

import (
	"studio-booking/internal/domain/schedule"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "hhmm" and "civildate" tags to gin's binding
// validator. It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("hhmm", validateClockTime); err != nil {
		return err
	}
	return v.RegisterValidation("civildate", validateCivilDate)
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := schedule.ParseClockTime(fl.Field().String())
	return err == nil
}

func validateCivilDate(fl validator.FieldLevel) bool {
	_, err := schedule.ParseDate(fl.Field().String())
	return err == nil
}
