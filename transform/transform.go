package transform

import (
	"errors"
	"reflect"
)

// ErrNotStruct is returned by StructStrings when its argument is not a struct value.
var ErrNotStruct = errors.New("transform: value is not a struct")

// MapStrings returns a new map holding f applied to every value of m. A nil m
// yields an empty, non-nil map.
func MapStrings[M ~map[K]string, K comparable](m M, f func(string) string) M {
	out := make(M, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

// Chain returns a function that applies fns left to right.
func Chain(fns ...func(string) string) func(string) string {
	return func(s string) string {
		for _, f := range fns {
			s = f(s)
		}
		return s
	}
}

// StructStrings returns a shallow copy of the struct v with f applied to every
// exported top-level string field and to the target of every non-nil *string
// field. String pointers are re-allocated in the copy so the original target
// is never written. Every other field, nested structs and maps included, is
// copied as it is.
func StructStrings[T any](v T, f func(string) string) (T, error) {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() != reflect.Struct {
		return v, ErrNotStruct
	}

	out := reflect.New(rv.Type()).Elem()
	out.Set(rv)
	for i := range out.NumField() {
		field := out.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(f(field.String()))
		case reflect.Ptr:
			if field.IsNil() || field.Elem().Kind() != reflect.String {
				continue
			}
			p := reflect.New(field.Type().Elem())
			p.Elem().SetString(f(field.Elem().String()))
			field.Set(p)
		}
	}
	return out.Interface().(T), nil
}
