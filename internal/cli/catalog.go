package cli

import (
	"fmt"

	"github.com/Gobd/pseudolocalizer/internal/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCmd(o *options) *cobra.Command {
	var (
		formatName string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "catalog <file>",
		Short: "Pseudolocalize every string of a flat JSON or YAML catalog",
		Long: `Reads a flat catalog mapping message keys to strings and writes a new catalog
with the same keys and pseudolocalized values. Every value must be a string;
nested objects are rejected. The input file is never modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			format, err := catalogFormat(formatName, path)
			if err != nil {
				return err
			}

			pl, err := loadPseudolocalizer(o.configPath, cmd.Flags(), o.log)
			if err != nil {
				return err
			}

			values, err := catalog.ReadFile(path, format)
			if err != nil {
				return err
			}

			out, err := pl.PseudolocalizeValues(values)
			if err != nil {
				return fmt.Errorf("failed to pseudolocalize %s: %w", path, err)
			}

			if outputPath == "" {
				return catalog.Encode(cmd.OutOrStdout(), format, out)
			}
			if err := catalog.WriteFile(outputPath, format, out); err != nil {
				return err
			}
			o.log.Info("wrote %d entries to %s", len(out), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "catalog format (json or yaml), derived from the file extension when empty")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the result to this file instead of stdout")
	return cmd
}

func catalogFormat(name, path string) (catalog.Format, error) {
	if name != "" {
		return catalog.ParseFormat(name)
	}
	return catalog.FormatFromPath(path)
}
