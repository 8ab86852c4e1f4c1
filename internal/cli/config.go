package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/daydemir/eventato/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configDirectory string

var configCmd = &cobra.Command{
	Use:   "config [key]",
	Short: "View the effective configuration",
	Long: `View the effective eventato configuration.

Values come from <directory>/.eventato.yaml (or --config) with defaults
filled in for anything not set.

Examples:
  eventato config                      Show all config
  eventato config agent.binary         Get a specific value
  eventato config relevance.keywords   Get a list value`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDirectory(configDirectory)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(dir)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return showConfig(cmd.OutOrStdout(), cfg)
		}
		return getConfigValue(cmd.OutOrStdout(), cfg, args[0])
	},
}

func init() {
	configCmd.Flags().StringVarP(&configDirectory, "directory", "d", "", "project directory (defaults to current directory)")
	rootCmd.AddCommand(configCmd)
}

func showConfig(w io.Writer, cfg *config.Config) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = w.Write(content)
	return err
}

func getConfigValue(w io.Writer, cfg *config.Config, key string) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	value := v.Get(key)
	if value == nil {
		return fmt.Errorf("key not found: %s", key)
	}

	fmt.Fprintln(w, value)
	return nil
}
