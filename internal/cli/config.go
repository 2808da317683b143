// internal/cli/config.go
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the settings a command would run with after flags, ALTSEED_*
variables and the --config file are merged. The output is a valid
--config file.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := yaml.Marshal(a.cfg)
			if err != nil {
				return errors.Wrap(err, "encode config")
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
