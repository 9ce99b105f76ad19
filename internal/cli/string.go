package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Gobd/pseudolocalizer/transform"
	"github.com/spf13/cobra"
)

func newStringCmd(o *options) *cobra.Command {
	var trimSpace bool

	cmd := &cobra.Command{
		Use:   "string [text...]",
		Short: "Pseudolocalize strings",
		Long:  `Pseudolocalizes each argument and prints one result per line. Without arguments, every line read from stdin is pseudolocalized instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pl, err := loadPseudolocalizer(o.configPath, cmd.Flags(), o.log)
			if err != nil {
				return err
			}

			f := pl.Pseudolocalize
			if trimSpace {
				f = transform.Chain(strings.TrimSpace, pl.Pseudolocalize)
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, arg := range args {
					fmt.Fprintln(out, f(arg))
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(out, f(scanner.Text()))
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trimSpace, "trim-space", false, "trim surrounding whitespace before pseudolocalizing")
	return cmd
}
