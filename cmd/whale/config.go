package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whale/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a round would use, as YAML.

The config file is searched in this order:
  --config <path>
  ~/.whale/configs/whale.yaml
  ./configs/whale.yaml
  built-in defaults

Examples:
  whale config > ~/.whale/configs/whale.yaml
  whale config --preset frantic
  whale config --default`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addConfigFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefault {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
