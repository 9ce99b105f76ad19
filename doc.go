// Package pseudolocalizer generates pseudolocalized strings: text wrapped in
// visible markers and padded towards the length a translation would have, so
// untranslated, truncated or hardcoded UI strings stand out without real
// translations.
//
// Build a [Pseudolocalizer] once and reuse it:
//
//	pl, err := pseudolocalizer.New(
//	    pseudolocalizer.WithRelativeScale(1.4),
//	    pseudolocalizer.WithPrefix("["),
//	    pseudolocalizer.WithPostfix("]"),
//	)
//	out := pl.Pseudolocalize("Save changes")
//
// The output is the prefix, padding, the input and padding again, then the
// postfix. When the requested scale leaves no room for at least one pad rune
// per side the output degrades to the first rune of each part, so markers stay
// visible on short strings.
//
// [Pseudolocalizer.PseudolocalizeObject] transforms every value of a flat
// catalog and [Pseudolocalizer.PseudolocalizeValues] does the same for
// loosely typed, decoded documents. Presets for several script families are
// available through [CJK], [LCG], [AFB], [Mix] and [Preset].
//
// Sub-packages:
//   - openapi – OpenAPI schemas for the configuration and catalog documents
//   - transform – copy-on-write string functions over maps and structs
package pseudolocalizer
