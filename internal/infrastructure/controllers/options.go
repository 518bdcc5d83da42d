package controllers

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgradeselect/config"
)

// resolveSettings loads the config file named by --config (or found in the
// default locations) and lets explicit flags override it.
func resolveSettings(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	if flag := cmd.Flags().Lookup("file"); flag != nil && flag.Changed {
		cfg.PackagesFile = flag.Value.String()
	}
	if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Changed {
		cfg.Output = flag.Value.String()
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		cfg.NoColor = true
	}

	return cfg, nil
}
