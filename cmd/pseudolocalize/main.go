// Command pseudolocalize generates pseudolocalized strings and catalogs for
// exercising internationalization pipelines.
//
// Usage:
//
//	pseudolocalize string "Save changes"
//	pseudolocalize --preset cjk catalog messages.json -o messages.pseudo.json
//	pseudolocalize --config pseudo.yaml catalog messages.yaml
package main

import "github.com/Gobd/pseudolocalizer/internal/cli"

func main() {
	cli.Execute()
}
