// Package openapi describes the documents consumed by pseudolocalization
// tooling as OpenAPI 3 schemas: the configuration document accepted by
// [pseudolocalizer.Config] and the flat string catalog accepted by
// [pseudolocalizer.Pseudolocalizer.PseudolocalizeValues].
//
// Use [Document] to get both as components of one OpenAPI document, or
// validate decoded JSON directly:
//
//	err := openapi.CatalogSchema().VisitJSON(decoded)
package openapi
