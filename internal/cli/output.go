package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// writeResult prints v as JSON or text as a plain line.
func writeResult(cmd *cobra.Command, format string, v any, text string) error {
	if format == "json" {
		return writeJSON(cmd, v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
