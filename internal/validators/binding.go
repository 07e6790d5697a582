package validators

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// Register installs the custom rules on gin's validator and makes field
// errors report JSON names. Call once at startup.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Install(v)
}

func Install(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation("booking_status", bookingStatus); err != nil {
		return err
	}
	return v.RegisterValidation("hhmm", hhmm)
}

func bookingStatus(fl validator.FieldLevel) bool {
	_, err := booking.ParseStatus(fl.Field().String())
	return err == nil
}

func hhmm(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse("15:04", s)
	return err == nil && len(s) == 5
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
