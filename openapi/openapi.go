package openapi

import (
	"strings"

	p "github.com/Gobd/pseudolocalizer"
	"github.com/getkin/kin-openapi/openapi3"
)

// Component names used by Document.
const (
	ConfigComponent  = "PseudolocalizerConfig"
	CatalogComponent = "Catalog"
)

// ConfigSchema returns the schema of a pseudolocalizer configuration document.
// Every property is optional; omitted properties take the library defaults.
func ConfigSchema() *openapi3.Schema {
	scale := openapi3.NewFloat64Schema().
		WithMin(p.MinRelativeScale).
		WithExclusiveMin(true).
		WithMax(p.MaxRelativeScale).
		WithDefault(p.DefaultRelativeScale)
	scale.Description = "Target output length relative to the input length. Must be greater than 0.5 and at most 100."

	schema := openapi3.NewObjectSchema().
		WithProperty("relativeScale", scale).
		WithProperty("prefix", stringProperty(p.DefaultPrefix, "Marker emitted before every string.")).
		WithProperty("postfix", stringProperty(p.DefaultPostfix, "Marker emitted after every string.")).
		WithProperty("prePad", stringProperty(p.DefaultPad, "Filler repeated between the prefix and the input.")).
		WithProperty("postPad", stringProperty(p.DefaultPad, "Filler repeated between the input and the postfix."))
	schema.Description = "Pseudolocalizer configuration. Empty strings disable the corresponding decoration."
	return schema
}

// CatalogSchema returns the schema of a flat catalog: an object whose values
// are all strings.
func CatalogSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema())
	schema.Description = "Flat mapping of message keys to message strings."
	return schema
}

// PresetSchema returns a string schema enumerating the preset names.
func PresetSchema() *openapi3.Schema {
	names := p.PresetNames()
	enum := make([]any, len(names))
	for i := range names {
		enum[i] = names[i]
	}
	schema := openapi3.NewStringSchema().WithEnum(enum...)
	schema.Description = "Preset parameter table: " + strings.Join(names, ", ") + "."
	return schema
}

// Document returns an OpenAPI 3.0.3 document holding the configuration,
// preset and catalog schemas as components.
func Document(title, version string) *openapi3.T {
	doc := DocBase(title, "Documents consumed by pseudolocalization tooling.", version)
	doc.Components = &openapi3.Components{
		Schemas: openapi3.Schemas{
			ConfigComponent:  openapi3.NewSchemaRef("", ConfigSchema()),
			CatalogComponent: openapi3.NewSchemaRef("", CatalogSchema()),
			"Preset":         openapi3.NewSchemaRef("", PresetSchema()),
		},
	}
	return doc
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(title, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

func stringProperty(def, desc string) *openapi3.Schema {
	schema := openapi3.NewStringSchema().WithDefault(def)
	schema.Description = desc
	return schema
}
