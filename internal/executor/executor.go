package executor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daydemir/eventato/internal/agent"
	"github.com/daydemir/eventato/internal/config"
	"github.com/daydemir/eventato/internal/detector"
	"github.com/daydemir/eventato/internal/display"
	"github.com/daydemir/eventato/internal/prompts"
	"github.com/daydemir/eventato/internal/relevance"
	"github.com/daydemir/eventato/internal/scan"
	"github.com/daydemir/eventato/internal/session"
	"github.com/daydemir/eventato/internal/types"
	"github.com/daydemir/eventato/internal/vcs"
)

// Deps are the collaborators a run depends on. Everything with side effects
// outside the process is reachable only through these fields.
type Deps struct {
	Display  *display.Display
	Prompter *session.Prompter
	Invoker  agent.Invoker

	// AgentName is shown while the agent runs
	AgentName string

	CheckAgent func(ctx context.Context) error
	EnsureRepo func(ctx context.Context, dir string) error
	Detect     func(ctx context.Context, dir string) (*types.SetupDescriptor, error)
	FindFiles  func(dir, feature string) ([]string, error)
}

// NewDeps wires the real detector, relevance filter, git probe and Cursor agent
func NewDeps(cfg *config.Config, disp *display.Display, prompter *session.Prompter) Deps {
	scanOpts := ScanOptions(cfg)
	relOpts := RelevanceOptions(cfg)

	return Deps{
		Display:   disp,
		Prompter:  prompter,
		Invoker:   agent.NewCursor(cfg.Agent.Binary, cfg.Agent.Args),
		AgentName: "Cursor",
		CheckAgent: func(ctx context.Context) error {
			return agent.CheckInstalled(ctx, cfg.Agent.Binary)
		},
		EnsureRepo: vcs.EnsureRepository,
		Detect: func(ctx context.Context, dir string) (*types.SetupDescriptor, error) {
			return detector.Detect(ctx, dir, scanOpts)
		},
		FindFiles: func(dir, feature string) ([]string, error) {
			return relevance.Find(dir, feature, scanOpts, relOpts)
		},
	}
}

// ScanOptions converts the scan section of the config
func ScanOptions(cfg *config.Config) scan.Options {
	return scan.Options{
		Extensions: cfg.Scan.Extensions,
		Ignore:     cfg.Scan.Ignore,
	}
}

// RelevanceOptions converts the relevance section of the config
func RelevanceOptions(cfg *config.Config) relevance.Options {
	return relevance.Options{
		Keywords:      cfg.Relevance.Keywords,
		MaxMatches:    cfg.Relevance.MaxMatches,
		FallbackLimit: cfg.Relevance.FallbackLimit,
	}
}

// Executor runs the add-events pipeline
type Executor struct {
	deps Deps
}

// New creates a new executor
func New(deps Deps) *Executor {
	return &Executor{deps: deps}
}

// Run executes one add-events invocation:
// environment checks, detection, input collection, summary, then either the
// dry-run preview or file discovery followed by a single agent invocation.
func (e *Executor) Run(ctx context.Context, opts Options) (*RunResult, error) {
	start := time.Now()
	d := e.deps.Display

	d.Banner()

	if err := e.deps.CheckAgent(ctx); err != nil {
		return nil, err
	}
	d.Success(fmt.Sprintf("%s CLI is available", e.deps.AgentName))

	if err := e.deps.EnsureRepo(ctx, opts.Directory); err != nil {
		return nil, err
	}

	d.Step("Detecting PostHog setup...")
	setup, err := e.deps.Detect(ctx, opts.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to detect PostHog setup: %w", err)
	}
	if setup == nil {
		return nil, detector.ErrNoSetup
	}
	d.Setup(setup)

	req, err := session.Collect(e.deps.Prompter, opts.Feature)
	if err != nil {
		return nil, err
	}

	d.Summary(req, opts.Directory)

	result := &RunResult{Setup: setup, Request: req}

	if opts.DryRun {
		snippets := make(map[string]string, len(req.EventNames))
		for _, event := range req.EventNames {
			snippets[event] = prompts.Snippet(setup.Flavor, event)
		}
		d.Preview(snippets, req.EventNames)
		result.Outcome = OutcomePreview
		result.Duration = time.Since(start)
		return result, nil
	}

	d.Step("Finding relevant files...")
	files, err := e.deps.FindFiles(opts.Directory, req.FeatureName)
	if err != nil {
		return nil, fmt.Errorf("failed to find relevant files: %w", err)
	}
	result.Files = files

	if len(files) == 0 {
		d.Warning("No relevant files found. You may need to specify the feature more specifically.")
		result.Outcome = OutcomeNoFiles
		result.Duration = time.Since(start)
		return result, nil
	}
	d.Files(files)

	instruction, err := prompts.Compose(req, *setup, files)
	if err != nil {
		return nil, err
	}
	result.Instruction = instruction

	d.AgentStart(e.deps.AgentName)
	slog.Debug("sending instruction", "feature", req.FeatureName, "events", len(req.EventNames), "files", len(files))

	if err := e.invoke(ctx, opts.Directory, instruction); err != nil {
		return nil, fmt.Errorf("failed to run %s agent: %w", e.deps.AgentName, err)
	}

	d.Done()
	result.Outcome = OutcomeSucceeded
	result.Duration = time.Since(start)
	return result, nil
}

// invoke runs the agent with SIGINT/SIGTERM caught for the duration of the
// call, so the child gets interrupted and reaped before we exit. Outside of
// this window signals terminate the process as usual.
func (e *Executor) invoke(ctx context.Context, dir, instruction string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return e.deps.Invoker.Invoke(ctx, dir, instruction)
}
