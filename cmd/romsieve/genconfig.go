package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"romsieve/pkg/config"
	"romsieve/pkg/errors"
)

var (
	genConfigWrite     bool
	genConfigEffective bool

	genConfigCmd = &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long: `Print the default policy configuration in TOML, ready to edit and
pass back with --config. With --effective, print the configuration as
currently resolved (defaults, config file and environment applied).`,
		RunE: runGenConfig,
	}
)

func init() {
	genConfigCmd.Flags().BoolVarP(&genConfigWrite, "write", "w", false, "Write to romsieve.toml instead of stdout")
	genConfigCmd.Flags().BoolVar(&genConfigEffective, "effective", false, "Print the resolved configuration instead of the defaults")
}

func runGenConfig(cmd *cobra.Command, args []string) error {
	content := config.DefaultTOML()

	if genConfigEffective {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		content, err = config.MarshalTOML(cfg)
		if err != nil {
			return err
		}
	}

	if genConfigWrite {
		const path = "romsieve.toml"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "cannot write %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
