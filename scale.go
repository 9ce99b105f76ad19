package pseudolocalizer

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// MinRelativeScale is the exclusive lower bound for relativeScale.
	MinRelativeScale = 0.5
	// DefaultRelativeScale is used when no relativeScale is given. Short strings
	// stay in degraded mode with it; padding starts around 19 characters with the
	// default markers.
	DefaultRelativeScale = 1.33
	// MaxRelativeScale is the inclusive upper bound for relativeScale. It keeps
	// the padding of any input addressable.
	MaxRelativeScale = 100
)

var (
	errNotFinite = errors.New("must be a finite number")
	errNotNumber = errors.New("must be a number")
)

var scaleRules = []validation.Rule{
	validation.By(func(value any) error {
		f, _ := value.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errNotFinite
		}
		return nil
	}),
	validation.Required,
	validation.Min(MinRelativeScale).Exclusive(),
	validation.Max(float64(MaxRelativeScale)),
}

// ParseScale converts a loosely typed relativeScale into a validated float64.
// Numeric kinds and json.Number are accepted; strings are not, even when they
// spell a number. Anything else, and any number outside
// (MinRelativeScale, MaxRelativeScale], yields a *ConfigurationError carrying v
// verbatim.
func ParseScale(v any) (float64, error) {
	var (
		f   float64
		err error
	)
	switch s := v.(type) {
	case json.Number:
		f, err = s.Float64()
	case string:
		err = errNotNumber
	default:
		f, err = govalidator.ToFloat(v)
	}
	if err != nil {
		return 0, &ConfigurationError{Value: v, Err: err}
	}
	if err := validateScale(f); err != nil {
		return 0, &ConfigurationError{Value: v, Err: err}
	}
	return f, nil
}

func validateScale(f float64) error {
	return validation.Validate(f, scaleRules...)
}
