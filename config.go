package pseudolocalizer

// Config is the serializable form of a Pseudolocalizer, as read from JSON, YAML
// or layered configuration. A nil field means "use the default".
//
// RelativeScale is loosely typed on purpose: documents may carry it as a number
// or a string, and Build reports whatever was supplied when it is not a number
// greater than MinRelativeScale.
type Config struct {
	RelativeScale any     `json:"relativeScale,omitempty" yaml:"relativeScale,omitempty" koanf:"relativeScale"`
	Prefix        *string `json:"prefix,omitempty" yaml:"prefix,omitempty" koanf:"prefix"`
	Postfix       *string `json:"postfix,omitempty" yaml:"postfix,omitempty" koanf:"postfix"`
	PrePad        *string `json:"prePad,omitempty" yaml:"prePad,omitempty" koanf:"prePad"`
	PostPad       *string `json:"postPad,omitempty" yaml:"postPad,omitempty" koanf:"postPad"`
}

// Options translates the set fields of c into constructor options.
func (c Config) Options() []Option {
	var opts []Option
	if c.RelativeScale != nil {
		opts = append(opts, withScaleValue(c.RelativeScale))
	}
	if c.Prefix != nil {
		opts = append(opts, WithPrefix(*c.Prefix))
	}
	if c.Postfix != nil {
		opts = append(opts, WithPostfix(*c.Postfix))
	}
	if c.PrePad != nil {
		opts = append(opts, WithPrePad(*c.PrePad))
	}
	if c.PostPad != nil {
		opts = append(opts, WithPostPad(*c.PostPad))
	}
	return opts
}

// Build validates c and returns the Pseudolocalizer it describes.
func (c Config) Build() (*Pseudolocalizer, error) {
	return New(c.Options()...)
}

// Validate reports whether Build would succeed.
func (c Config) Validate() error {
	if c.RelativeScale == nil {
		return nil
	}
	_, err := ParseScale(c.RelativeScale)
	return err
}

// Merge returns c with every non-nil field of override applied on top.
func (c Config) Merge(override Config) Config {
	if override.RelativeScale != nil {
		c.RelativeScale = override.RelativeScale
	}
	if override.Prefix != nil {
		c.Prefix = override.Prefix
	}
	if override.Postfix != nil {
		c.Postfix = override.Postfix
	}
	if override.PrePad != nil {
		c.PrePad = override.PrePad
	}
	if override.PostPad != nil {
		c.PostPad = override.PostPad
	}
	return c
}

// Config returns the effective configuration of p with every field set.
func (p *Pseudolocalizer) Config() Config {
	return Config{
		RelativeScale: p.relativeScale,
		Prefix:        ptr(p.prefix),
		Postfix:       ptr(p.postfix),
		PrePad:        ptr(p.PrePad()),
		PostPad:       ptr(p.PostPad()),
	}
}

func (c Config) clone() Config {
	return Config{
		RelativeScale: c.RelativeScale,
		Prefix:        clonePtr(c.Prefix),
		Postfix:       clonePtr(c.Postfix),
		PrePad:        clonePtr(c.PrePad),
		PostPad:       clonePtr(c.PostPad),
	}
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr(*s)
}

func ptr(s string) *string {
	return &s
}
