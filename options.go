package pseudolocalizer

// Option tweaks a Pseudolocalizer before it is validated and frozen.
type Option func(*settings)

type settings struct {
	relativeScale any
	prefix        string
	postfix       string
	prePad        string
	postPad       string
}

const (
	// DefaultPrefix is emitted before every transformation unless overridden.
	DefaultPrefix = "ʕつ"
	// DefaultPostfix is emitted after every transformation unless overridden.
	DefaultPostfix = "ʔつ"
	// DefaultPad is the filler used for both sides unless overridden.
	DefaultPad = "•"
)

func defaultSettings() settings {
	return settings{
		relativeScale: DefaultRelativeScale,
		prefix:        DefaultPrefix,
		postfix:       DefaultPostfix,
		prePad:        DefaultPad,
		postPad:       DefaultPad,
	}
}

// WithRelativeScale sets the target length of the output relative to the input.
// It must be greater than MinRelativeScale.
func WithRelativeScale(scale float64) Option {
	return func(s *settings) {
		s.relativeScale = scale
	}
}

// WithPrefix sets the marker placed at the very start of every output. An empty
// prefix disables it.
func WithPrefix(prefix string) Option {
	return func(s *settings) {
		s.prefix = prefix
	}
}

// WithPostfix sets the marker placed at the very end of every output.
func WithPostfix(postfix string) Option {
	return func(s *settings) {
		s.postfix = postfix
	}
}

// WithPrePad sets the filler between the prefix and the input.
func WithPrePad(pad string) Option {
	return func(s *settings) {
		s.prePad = pad
	}
}

// WithPostPad sets the filler between the input and the postfix.
func WithPostPad(pad string) Option {
	return func(s *settings) {
		s.postPad = pad
	}
}

// WithPads sets both fillers at once.
func WithPads(prePad, postPad string) Option {
	return func(s *settings) {
		s.prePad = prePad
		s.postPad = postPad
	}
}

// withScaleValue carries a loosely typed scale from a Config through to validation.
func withScaleValue(v any) Option {
	return func(s *settings) {
		s.relativeScale = v
	}
}
