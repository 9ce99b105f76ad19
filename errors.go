package pseudolocalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrInvalidConfiguration is matched by every error returned for an unusable configuration.
	ErrInvalidConfiguration = errors.New("pseudolocalizer: invalid configuration")
	// ErrInvalidArgument is matched by every error returned for input of the wrong type.
	ErrInvalidArgument = errors.New("pseudolocalizer: invalid argument")
)

// ConfigurationError reports a relativeScale that is not a number greater than 0.5,
// or one above MaxRelativeScale. Value holds the offending value exactly as it
// was supplied.
type ConfigurationError struct {
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	var verr validation.Error
	if errors.As(e.Err, &verr) && verr.Code() == validation.ErrMaxLessEqualThanRequired.Code() {
		return fmt.Sprintf("relativeScale should be at most %v, but is %q instead", MaxRelativeScale, fmt.Sprint(e.Value))
	}
	return fmt.Sprintf("relativeScale should be greater than %v, but is %q instead", MinRelativeScale, fmt.Sprint(e.Value))
}

// Unwrap allows errors.Is/As to inspect the underlying validation error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// ArgumentError reports a value whose runtime type does not match what the
// operation accepts. Want and Got use JavaScript-style type names, see TypeName,
// except for PseudolocalizeStruct, which reports Go type names.
type ArgumentError struct {
	Subject string
	Want    string
	Got     string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s should be of type %q, but is %q instead", e.Subject, e.Want, e.Got)
}

// Is matches ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func argumentError(subject, want string, value any) error {
	return &ArgumentError{Subject: subject, Want: want, Got: TypeName(value)}
}

// TypeName classifies a dynamic value the way a loosely typed caller would see
// it: "string", "number", "boolean", "function", "null" or "object".
func TypeName(v any) string {
	if v == nil {
		return "null"
	}
	if _, ok := v.(json.Number); ok {
		return "number"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "number"
	case reflect.Func:
		return "function"
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
	}
	return "object"
}
