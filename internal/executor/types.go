package executor

import (
	"time"

	"github.com/daydemir/eventato/internal/types"
)

// Outcome is the terminal state of a successful run
type Outcome string

const (
	// OutcomePreview means dry-run stopped after the summary
	OutcomePreview Outcome = "preview"
	// OutcomeNoFiles means no candidate files were found; nothing changed
	OutcomeNoFiles Outcome = "no_files"
	// OutcomeSucceeded means the agent exited zero
	OutcomeSucceeded Outcome = "succeeded"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// Options are the per-run inputs from the command line
type Options struct {
	Directory string
	Feature   string
	DryRun    bool
}

// RunResult holds what a run produced
type RunResult struct {
	Outcome     Outcome
	Setup       *types.SetupDescriptor
	Request     types.EventRequest
	Files       []string
	Instruction string
	Duration    time.Duration
}
