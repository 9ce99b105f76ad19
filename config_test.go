package pseudolocalizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_BuildDefaults(t *testing.T) {
	pl, err := Config{}.Build()
	require.NoError(t, err)
	assert.Equal(t, DefaultRelativeScale, pl.RelativeScale())
	assert.Equal(t, "ʕつ•ᴥ•ʔつ", pl.Pseudolocalize("ᴥ"))
}

func TestConfig_EmptyStringsDisableDecoration(t *testing.T) {
	pl, err := Config{RelativeScale: 1, Prefix: ptr(""), Postfix: ptr("")}.Build()
	require.NoError(t, err)
	assert.Equal(t, "•ᴥ•", pl.Pseudolocalize("ᴥᴥ"))
}

func TestConfig_JSON(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"relativeScale": 2.5, "prePad": " ", "postPad": " "}`), &cfg))
	require.NoError(t, cfg.Validate())

	pl, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "ʕつ • ᴥ • ʔつ", pl.Pseudolocalize("• ᴥ •"))
}

func TestConfig_YAML(t *testing.T) {
	var cfg Config
	doc := "relativeScale: 8\nprefix: \"[\"\npostfix: \"]\"\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	pl, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "[••••••ab••••••]", pl.Pseudolocalize("ab"))
}

func TestConfig_YAMLNonNumericScale(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte("relativeScale: woof\n"), &cfg))

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), `but is "woof" instead`)
}

func TestConfig_Merge(t *testing.T) {
	base := Config{RelativeScale: 1.33, Prefix: ptr("<"), Postfix: ptr(">")}
	merged := base.Merge(Config{RelativeScale: 3, Postfix: ptr("]")})

	assert.Equal(t, 3, merged.RelativeScale)
	assert.Equal(t, "<", *merged.Prefix)
	assert.Equal(t, "]", *merged.Postfix)
	assert.Nil(t, merged.PrePad)

	// base is a value and keeps its own fields
	assert.Equal(t, ">", *base.Postfix)
}

func TestPseudolocalizer_ConfigRoundTrip(t *testing.T) {
	pl := bear(t, WithRelativeScale(4), WithPrefix("["), WithPostfix("]"), WithPads("ab", "xyz"))

	again, err := pl.Config().Build()
	require.NoError(t, err)
	assert.Equal(t, pl.Pseudolocalize("hello"), again.Pseudolocalize("hello"))

	b, err := json.Marshal(pl.Config())
	require.NoError(t, err)
	assert.JSONEq(t, `{"relativeScale":4,"prefix":"[","postfix":"]","prePad":"ab","postPad":"xyz"}`, string(b))
}
