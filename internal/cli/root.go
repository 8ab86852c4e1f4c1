package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/daydemir/eventato/internal/display"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "eventato",
	Short: "Add PostHog analytics events to your codebase using Cursor's headless CLI",
	Long: `Eventato detects how your project uses PostHog, asks which events you want
to track, and hands the edit to Cursor's headless agent.

Get started:
  eventato add-events                     Prompt for feature and events
  eventato add-events -f login            Skip the feature prompt
  eventato add-events --dry-run           Show what would be done
  eventato config                         Show effective configuration`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
		if noColor {
			color.NoColor = true
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(color.YellowString("Please specify a command. Use --help for more information."))
		return cmd.Help()
	},
}

// Execute runs the root command. Signals keep their default behavior here;
// only the agent run installs a handler.
func Execute() error {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		display.NewWithOptions(noColor).Error(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <directory>/.eventato.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.SetVersionTemplate(fmt.Sprintf("eventato version %s\n", version))
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
