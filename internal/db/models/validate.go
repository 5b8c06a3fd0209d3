package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	// brPlatePattern accepts the old (ABC1234) and Mercosur (ABC1D23)
	// Brazilian plate formats.
	brPlatePattern = regexp.MustCompile(`^(?:[A-Z]{3}[0-9]{4}|[A-Z]{3}[0-9][A-Z][0-9]{2})$`)

	// brPhonePattern accepts a DDD plus an 8 or 9 digit number.
	brPhonePattern = regexp.MustCompile(`^[0-9]{9,11}$`)
)

// validate is the shared validator instance for model constructors. Custom
// tags cover the Brazilian formats the stock tags cannot express.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	mustRegister(v, "br_plate", func(fl validator.FieldLevel) bool {
		return brPlatePattern.MatchString(fl.Field().String())
	})

	mustRegister(v, "br_phone", func(fl validator.FieldLevel) bool {
		return brPhonePattern.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		log.Fatal().Err(err).Str("tag", tag).Msg("failed to register validation")
	}
}
