// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"altseed/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "altseed", version.String())
			return err
		},
	}
}
