package catalog

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"messages.json", JSON},
		{"dir/messages.YAML", YAML},
		{"messages.yml", YAML},
	}
	for _, tc := range tests {
		got, err := FormatFromPath(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got)
	}

	_, err := FormatFromPath("messages")
	assert.Error(t, err)
	_, err = FormatFromPath("messages.toml")
	assert.Error(t, err)
}

func TestDecode_JSON(t *testing.T) {
	v, err := Decode(strings.NewReader(`{"woof": "ᴥ", "ruff": 1}`), JSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"woof": "ᴥ", "ruff": json.Number("1")}, v)
}

func TestDecode_YAML(t *testing.T) {
	v, err := Decode(strings.NewReader("woof: ᴥ\ngrr: \" ᴥ \"\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"woof": "ᴥ", "grr": " ᴥ "}, v)
}

func TestDecode_Empty(t *testing.T) {
	for _, f := range []Format{JSON, YAML} {
		v, err := Decode(strings.NewReader(""), f)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, v)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"woof":`), JSON)
	assert.ErrorContains(t, err, "failed to decode json catalog")
}

func TestDecode_TrailingData(t *testing.T) {
	tests := []struct {
		name string
		in   string
		f    Format
	}{
		{"json junk", `{"woof": "ᴥ"} junk`, JSON},
		{"json second value", `{"woof": "ᴥ"} {"grr": "ᴥ"}`, JSON},
		{"yaml second document", "woof: ᴥ\n---\ngrr: ᴥ\n", YAML},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.in), tc.f)
			require.ErrorIs(t, err, errTrailingData)
			assert.ErrorContains(t, err, "failed to decode "+string(tc.f)+" catalog")
		})
	}

	v, err := Decode(strings.NewReader("{\"woof\": \"ᴥ\"}\n\n"), JSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"woof": "ᴥ"}, v)
}

func TestEncode(t *testing.T) {
	m := map[string]string{"b": "<ᴥ>", "a": "x"}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, JSON, m))
	assert.Equal(t, "{\n  \"a\": \"x\",\n  \"b\": \"<ᴥ>\"\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, YAML, map[string]string{"b": "hello world", "a": "x"}))
	assert.Equal(t, "a: x\nb: hello world\n", buf.String())
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "messages.yaml")
	m := map[string]string{"greeting": "ʕつ•h•ʔつ"}

	require.NoError(t, WriteFile(path, YAML, m))
	v, err := ReadFile(path, YAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"greeting": "ʕつ•h•ʔつ"}, v)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"), JSON)
	assert.ErrorContains(t, err, "failed to read catalog")
}
