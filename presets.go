package pseudolocalizer

import (
	"fmt"
	"slices"
	"strings"
)

// PresetScale is the relative scale shared by every preset.
const PresetScale = 1.33

// Preset names accepted by Preset and PresetConfig.
const (
	PresetDefault = "default"
	PresetCJK     = "cjk"
	PresetLCG     = "lcg"
	PresetAFB     = "afb"
	PresetMix     = "mix"
)

var presets = map[string]Config{
	PresetDefault: {
		RelativeScale: DefaultRelativeScale,
		Prefix:        ptr(DefaultPrefix),
		Postfix:       ptr(DefaultPostfix),
		PrePad:        ptr(DefaultPad),
		PostPad:       ptr(DefaultPad),
	},
	// Wide CJK brackets and ideographs: ｟纬亶龘 ... 纬亶龘｠
	PresetCJK: {
		RelativeScale: PresetScale,
		Prefix:        ptr("\uFF5F"),
		Postfix:       ptr("\uFF60"),
		PrePad:        ptr("\u7EAC\u4EB6\u9F98"),
		PostPad:       ptr("\u7EAC\u4EB6\u9F98"),
	},
	// Latin, Cyrillic and Greek: «sЖλ ... sЯΩ»
	PresetLCG: {
		RelativeScale: PresetScale,
		Prefix:        ptr("\u00AB"),
		Postfix:       ptr("\u00BB"),
		PrePad:        ptr("s\u0416\u03BB"),
		PostPad:       ptr("s\u042F\u03A9"),
	},
	// Arabic, Farsi and Bengali.
	PresetAFB: {
		RelativeScale: PresetScale,
		Prefix:        ptr("\u300E"),
		Postfix:       ptr("\u300F"),
		PrePad:        ptr("\u0646\u09AB\u067E"),
		PostPad:       ptr("\u0646\u09B7\u06AF"),
	},
	// ｢ßӜڣ ... ⭓亶겡｣
	PresetMix: {
		RelativeScale: PresetScale,
		Prefix:        ptr("\uFF62"),
		Postfix:       ptr("\uFF63"),
		PrePad:        ptr("\u00DF\u04DC\u06A3"),
		PostPad:       ptr("\u2B53\u4EB6\uACA1"),
	},
}

// CJK returns a Pseudolocalizer using double-width CJK brackets and filler.
func CJK() *Pseudolocalizer {
	return mustPreset(PresetCJK)
}

// LCG returns a Pseudolocalizer using Latin, Cyrillic and Greek brackets and filler.
func LCG() *Pseudolocalizer {
	return mustPreset(PresetLCG)
}

// AFB returns a Pseudolocalizer using Arabic, Farsi and Bengali brackets and filler.
func AFB() *Pseudolocalizer {
	return mustPreset(PresetAFB)
}

// Mix returns a Pseudolocalizer mixing several non-Latin scripts.
func Mix() *Pseudolocalizer {
	return mustPreset(PresetMix)
}

// PresetNames lists the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PresetConfig returns the parameter table of the named preset. Names are
// case-insensitive.
func PresetConfig(name string) (Config, error) {
	cfg, ok := presets[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q, must be one of %s", name, strings.Join(PresetNames(), ", "))
	}
	return cfg.clone(), nil
}

// Preset returns a new Pseudolocalizer for the named preset.
func Preset(name string) (*Pseudolocalizer, error) {
	cfg, err := PresetConfig(name)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

func mustPreset(name string) *Pseudolocalizer {
	p, err := Preset(name)
	if err != nil {
		panic(err)
	}
	return p
}
