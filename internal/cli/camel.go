package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deckjson/pkg/casing"
)

// camelCommand creates the camel command, which prints the attribute name
// each argument serializes to.
func (c *CLI) camelCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "camel <name>...",
		Short:   "Print the camelCase form of attribute names",
		Example: "  deckjson camel get_fill_color initial_view_state",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), casing.CamelAndLower(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
