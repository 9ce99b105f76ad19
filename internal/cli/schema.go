package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Gobd/pseudolocalizer/openapi"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI schemas of the configuration and catalog documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openapi.Document("pseudolocalize", Version).MarshalJSON()
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, b, "", "  "); err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			buf.WriteByte('\n')
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
