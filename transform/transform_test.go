package transform_test

import (
	"strings"
	"testing"

	"github.com/Gobd/pseudolocalizer/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

type inner struct {
	Text string
}

type message struct {
	ID      int
	Title   string
	Body    *string
	Kind    label
	Note    *label
	Missing *string
	Nested  inner
	Tags    []string
	Extra   map[string]string
	private string
}

func TestMapStrings(t *testing.T) {
	in := map[string]string{"a": "x", "b": "yy"}
	out := transform.MapStrings(in, strings.ToUpper)

	assert.Equal(t, map[string]string{"a": "X", "b": "YY"}, out)
	assert.Equal(t, map[string]string{"a": "x", "b": "yy"}, in)

	out["c"] = "z"
	assert.NotContains(t, in, "c")
}

func TestMapStrings_Nil(t *testing.T) {
	var in map[string]string
	out := transform.MapStrings(in, strings.ToUpper)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestMapStrings_NamedType(t *testing.T) {
	type catalog map[string]string
	out := transform.MapStrings(catalog{"k": "v"}, strings.ToUpper)
	assert.Equal(t, catalog{"k": "V"}, out)
}

func TestChain(t *testing.T) {
	f := transform.Chain(strings.TrimSpace, strings.ToUpper, func(s string) string { return "<" + s + ">" })
	assert.Equal(t, "<HELLO>", f("  hello "))
	assert.Equal(t, "abc", transform.Chain()("abc"))
}

func TestStructStrings(t *testing.T) {
	body := "body"
	note := label("note")
	in := message{
		ID:      7,
		Title:   "title",
		Body:    &body,
		Kind:    "kind",
		Note:    &note,
		Nested:  inner{Text: "inner"},
		Tags:    []string{"tag"},
		Extra:   map[string]string{"k": "v"},
		private: "private",
	}

	out, err := transform.StructStrings(in, strings.ToUpper)
	require.NoError(t, err)

	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "TITLE", out.Title)
	assert.Equal(t, "BODY", *out.Body)
	assert.Equal(t, label("KIND"), out.Kind)
	assert.Equal(t, label("NOTE"), *out.Note)
	assert.Nil(t, out.Missing)
	assert.Equal(t, "inner", out.Nested.Text)
	assert.Equal(t, []string{"tag"}, out.Tags)
	assert.Equal(t, map[string]string{"k": "v"}, out.Extra)
	assert.Equal(t, "private", out.private)

	// the input and whatever it points to stay as they were
	assert.Equal(t, "title", in.Title)
	assert.Equal(t, "body", body)
	assert.Equal(t, label("note"), note)
	assert.NotSame(t, in.Body, out.Body)
}

func TestStructStrings_NotStruct(t *testing.T) {
	_, err := transform.StructStrings("plain", strings.ToUpper)
	require.ErrorIs(t, err, transform.ErrNotStruct)

	_, err = transform.StructStrings(&message{}, strings.ToUpper)
	require.ErrorIs(t, err, transform.ErrNotStruct)

	var v any = message{}
	_, err = transform.StructStrings(v, strings.ToUpper)
	require.ErrorIs(t, err, transform.ErrNotStruct)
}
