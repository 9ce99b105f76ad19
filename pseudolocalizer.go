package pseudolocalizer

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Gobd/pseudolocalizer/transform"
)

// Pseudolocalizer holds an immutable configuration. All methods are safe for
// concurrent use.
type Pseudolocalizer struct {
	relativeScale float64
	prefix        string
	postfix       string
	prePad        string
	postPad       string

	// rune counts of prefix and postfix
	markerLen int
}

// New returns a Pseudolocalizer configured by opts on top of the defaults.
// It fails with a *ConfigurationError if the relative scale is not a number
// greater than MinRelativeScale.
func New(opts ...Option) (*Pseudolocalizer, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	scale, err := ParseScale(s.relativeScale)
	if err != nil {
		return nil, err
	}
	return &Pseudolocalizer{
		relativeScale: scale,
		prefix:        s.prefix,
		postfix:       s.postfix,
		prePad:        s.prePad,
		postPad:       s.postPad,
		markerLen:     utf8.RuneCountInString(s.prefix) + utf8.RuneCountInString(s.postfix),
	}, nil
}

// MustNew is like [New] but panics on error.
func MustNew(opts ...Option) *Pseudolocalizer {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// RelativeScale returns the configured relative scale.
func (p *Pseudolocalizer) RelativeScale() float64 { return p.relativeScale }

// Prefix returns the configured prefix.
func (p *Pseudolocalizer) Prefix() string { return p.prefix }

// Postfix returns the configured postfix.
func (p *Pseudolocalizer) Postfix() string { return p.postfix }

// PrePad returns the configured pre-pad filler.
func (p *Pseudolocalizer) PrePad() string { return p.prePad }

// PostPad returns the configured post-pad filler.
func (p *Pseudolocalizer) PostPad() string { return p.postPad }

// Pseudolocalize wraps input in the prefix and postfix and pads it towards
// len(input)*RelativeScale runes, splitting the padding evenly between both
// sides. Lengths are counted in runes; an invalid UTF-8 byte counts as one rune
// and is copied through unchanged.
//
// When the budget leaves less than one pad rune per side, the output degrades
// to the prefix, the first rune of each pad, the first rune of input and the
// postfix. Otherwise input is emitted unmodified.
func (p *Pseudolocalizer) Pseudolocalize(input string) string {
	n := utf8.RuneCountInString(input)
	required := p.markerLen + n
	padPerSide := math.Floor((float64(n)*p.relativeScale - float64(required)) / 2)

	var b strings.Builder
	b.WriteString(p.prefix)
	if padPerSide < 1 {
		b.Grow(len(p.postfix) + 3*utf8.UTFMax)
		b.WriteString(firstChar(p.prePad))
		b.WriteString(firstChar(input))
		b.WriteString(firstChar(p.postPad))
	} else {
		k := int(padPerSide)
		b.Grow(len(input) + len(p.postfix) + 2*k*utf8.UTFMax)
		writeCycle(&b, p.prePad, k)
		b.WriteString(input)
		writeCycle(&b, p.postPad, k)
	}
	b.WriteString(p.postfix)
	return b.String()
}

// PseudolocalizeValue is the loosely typed form of Pseudolocalize for values
// decoded from documents. Anything but a string is rejected with an
// *ArgumentError naming the observed type; numbers are never stringified.
func (p *Pseudolocalizer) PseudolocalizeValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", argumentError("input", "string", v)
	}
	return p.Pseudolocalize(s), nil
}

// PseudolocalizeObject returns a new map with the same keys as obj and every
// value pseudolocalized. obj is never modified.
func (p *Pseudolocalizer) PseudolocalizeObject(obj map[string]string) map[string]string {
	return transform.MapStrings(obj, p.Pseudolocalize)
}

// PseudolocalizeValues is the loosely typed form of PseudolocalizeObject. obj
// must be a map keyed by strings whose values are all strings. Keys are checked
// in sorted order and the first offending entry aborts the call; no partial
// result is returned.
func (p *Pseudolocalizer) PseudolocalizeValues(obj any) (map[string]string, error) {
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, argumentError("object", "object", obj)
	}

	keys := make([]string, 0, rv.Len())
	values := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		keys = append(keys, k)
		values[k] = iter.Value()
	}
	slices.Sort(keys)

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v := values[k]
		if v.Kind() == reflect.Interface {
			v = v.Elem()
		}
		if !v.IsValid() || v.Kind() != reflect.String {
			var raw any
			if v.IsValid() {
				raw = v.Interface()
			}
			return nil, argumentError("value of "+strconv.Quote(k), "string", raw)
		}
		out[k] = p.Pseudolocalize(v.String())
	}
	return out, nil
}

// PseudolocalizeStruct returns a copy of the struct v with every top-level
// exported string and non-nil *string field pseudolocalized. Other fields are
// copied as they are and nested structs are not entered. v is never modified.
// A non-struct v yields an *ArgumentError whose Got is the Go type of v.
func PseudolocalizeStruct[T any](p *Pseudolocalizer, v T) (T, error) {
	out, err := transform.StructStrings(v, p.Pseudolocalize)
	if err != nil {
		return v, &ArgumentError{Subject: "value", Want: "struct", Got: fmt.Sprintf("%T", v)}
	}
	return out, nil
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// writeCycle writes the first k runes of pad repeated cyclically.
func writeCycle(b *strings.Builder, pad string, k int) {
	if pad == "" {
		return
	}
	rest := pad
	for range k {
		if rest == "" {
			rest = pad
		}
		_, size := utf8.DecodeRuneInString(rest)
		b.WriteString(rest[:size])
		rest = rest[size:]
	}
}
