package cli

import (
	"fmt"
	"text/tabwriter"

	p "github.com/Gobd/pseudolocalizer"
	"github.com/spf13/cobra"
)

func newPresetsCmd(o *options) *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List presets with a sample rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range p.PresetNames() {
				pl, err := p.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%v\t%s\n", name, pl.RelativeScale(), pl.Pseudolocalize(sample))
			}
			o.log.Debug("rendered %d presets", len(p.PresetNames()))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "Pseudolocalization", "text rendered with each preset")
	return cmd
}
