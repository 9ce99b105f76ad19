package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	p "github.com/Gobd/pseudolocalizer"
	"github.com/Gobd/pseudolocalizer/internal/logger"
	"github.com/asaskevich/govalidator"
	koanfjson "github.com/knadh/koanf/parsers/json"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// fileConfig is the layered configuration: a preset name plus overrides.
type fileConfig struct {
	Preset   string `koanf:"preset"`
	p.Config `koanf:",squash"`
}

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"preset":         "preset",
	"relative-scale": "relativeScale",
	"prefix":         "prefix",
	"postfix":        "postfix",
	"pre-pad":        "prePad",
	"post-pad":       "postPad",
}

// loadPseudolocalizer layers the preset, the optional config file and the
// flags that were set explicitly, then builds the result.
func loadPseudolocalizer(configPath string, flags *pflag.FlagSet, log logger.Logger) (*p.Pseudolocalizer, error) {
	k := koanf.New(".")

	if configPath != "" {
		parser, err := parserFor(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configPath), parser); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		log.Debug("loaded config from %s", configPath)
	}

	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, changedFlag), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var fc fileConfig
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	preset := fc.Preset
	if preset == "" {
		preset = p.PresetDefault
	}
	base, err := p.PresetConfig(preset)
	if err != nil {
		return nil, err
	}

	pl, err := base.Merge(fc.Config).Build()
	if err != nil {
		return nil, err
	}
	log.Debug("using preset %s with relativeScale %v", preset, pl.RelativeScale())
	return pl, nil
}

// changedFlag passes through only the configuration flags the user set. The
// scale flag is parsed here since the library rejects numeric strings; a value
// that does not parse is passed on as typed so the error can report it.
func changedFlag(f *pflag.Flag) (string, any) {
	key, ok := flagKeys[f.Name]
	if !ok || !f.Changed {
		return "", nil
	}
	raw := f.Value.String()
	if key == "relativeScale" && govalidator.IsFloat(raw) {
		if scale, err := govalidator.ToFloat(raw); err == nil {
			return key, scale
		}
	}
	return key, raw
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return koanfjson.Parser(), nil
	case ".yaml", ".yml":
		return koanfyaml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config file %s, expected .json, .yaml or .yml", path)
	}
}
