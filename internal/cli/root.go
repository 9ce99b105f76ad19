// Package cli implements the pseudolocalize command line tool.
package cli

import (
	"os"

	"github.com/Gobd/pseudolocalizer/internal/logger"
	"github.com/spf13/cobra"
)

// Version is reported by the schema command and --version.
var Version = "dev"

type options struct {
	configPath string
	verbose    bool
	log        logger.Logger
}

// NewRootCmd builds the command tree. Each call returns a fresh tree with its
// own flag state.
func NewRootCmd() *cobra.Command {
	o := &options{log: logger.Nop{}}

	rootCmd := &cobra.Command{
		Use:   "pseudolocalize",
		Short: "Generate pseudolocalized strings and catalogs",
		Long: `pseudolocalize wraps strings in visible markers and pads them towards the
length a translation would have, so untranslated or truncated UI strings are
easy to spot without real translations.

Configuration is layered: preset (or built-in defaults), then --config file,
then flags.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.log = logger.New("pseudolocalize", cmd.ErrOrStderr(), o.verbose)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "YAML or JSON configuration file")
	pf.String("preset", "", "preset parameter table (afb, cjk, default, lcg, mix)")
	pf.String("relative-scale", "", "target output length relative to the input length, greater than 0.5")
	pf.String("prefix", "", "marker emitted before every string")
	pf.String("postfix", "", "marker emitted after every string")
	pf.String("pre-pad", "", "filler between the prefix and the input")
	pf.String("post-pad", "", "filler between the input and the postfix")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(
		newStringCmd(o),
		newCatalogCmd(o),
		newPresetsCmd(o),
		newSchemaCmd(),
	)
	return rootCmd
}

// Execute runs the tool and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
