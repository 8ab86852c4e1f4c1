package cli

import (
	"os"

	"github.com/daydemir/eventato/internal/display"
	"github.com/daydemir/eventato/internal/executor"
	"github.com/daydemir/eventato/internal/session"
	"github.com/spf13/cobra"
)

var (
	addEventsFeature   string
	addEventsDirectory string
	addEventsDryRun    bool
)

var addEventsCmd = &cobra.Command{
	Use:   "add-events",
	Short: "Add PostHog analytics events for a feature",
	Long: `Add PostHog analytics events for a feature.

Steps:
  1. Checks that cursor-agent is installed and the directory is a git repository
  2. Detects the PostHog setup already in use (posthog-js, posthog-js/react, python)
  3. Asks for the feature, the events to track and optional context
  4. Picks candidate files by name and asks Cursor's agent to add the events

With --dry-run, stops after the summary and shows example capture calls.
No files are scanned for relevance and the agent is not started.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDirectory(addEventsDirectory)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(dir)
		if err != nil {
			return err
		}

		disp := display.NewWithOptions(noColor)
		prompter := session.NewPrompter(os.Stdin, os.Stdout, disp.Theme())
		exec := executor.New(executor.NewDeps(cfg, disp, prompter))

		_, err = exec.Run(cmd.Context(), executor.Options{
			Directory: dir,
			Feature:   addEventsFeature,
			DryRun:    addEventsDryRun,
		})
		return err
	},
}

func init() {
	addEventsCmd.Flags().StringVarP(&addEventsFeature, "feature", "f", "", "name of the feature to add events for")
	addEventsCmd.Flags().StringVarP(&addEventsDirectory, "directory", "d", "", "directory to work in (defaults to current directory)")
	addEventsCmd.Flags().BoolVar(&addEventsDryRun, "dry-run", false, "show what would be done without making changes")
	rootCmd.AddCommand(addEventsCmd)
}
