package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/daydemir/eventato/internal/agent"
	"github.com/daydemir/eventato/internal/config"
	"github.com/daydemir/eventato/internal/detector"
	"github.com/daydemir/eventato/internal/display"
	"github.com/daydemir/eventato/internal/session"
	"github.com/daydemir/eventato/internal/types"
)

type invocation struct {
	workDir     string
	instruction string
}

type fakeInvoker struct {
	calls []invocation
	err   error
}

func (f *fakeInvoker) Invoke(ctx context.Context, workDir, instruction string) error {
	f.calls = append(f.calls, invocation{workDir: workDir, instruction: instruction})
	return f.err
}

// testDeps wires the real detector and relevance filter against dir,
// with the git probe, agent probe and agent replaced.
func testDeps(t *testing.T, input string, inv agent.Invoker) (Deps, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	disp := display.NewWriter(&out, &out, true)
	prompter := session.NewPrompter(strings.NewReader(input), &out, disp.Theme())

	deps := NewDeps(config.DefaultConfig(), disp, prompter)
	deps.Invoker = inv
	deps.CheckAgent = func(ctx context.Context) error { return nil }
	deps.EnsureRepo = func(ctx context.Context, dir string) error { return nil }
	return deps, &out
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/LoginForm.jsx", "import posthog from 'posthog-js'\n\nexport function LoginForm() {}\n")
	writeFile(t, dir, "src/index.js", "console.log('app')\n")

	inv := &fakeInvoker{}
	deps, out := testDeps(t, "login\nsignup, signup_failed\n\n", inv)

	result, err := New(deps).Run(context.Background(), Options{Directory: dir})
	if err != nil {
		t.Fatalf("Run: %v\noutput:\n%s", err, out.String())
	}

	if result.Outcome != OutcomeSucceeded {
		t.Errorf("Outcome = %s, want succeeded", result.Outcome)
	}
	if result.Setup.Flavor != types.FlavorJavaScript {
		t.Errorf("Flavor = %s, want javascript", result.Setup.Flavor)
	}
	if result.Setup.ImportStatement != detector.ImportJavaScript || result.Setup.UsagePattern != detector.UsagePattern {
		t.Errorf("unexpected setup %+v", result.Setup)
	}
	if !reflect.DeepEqual(result.Files, []string{"src/LoginForm.jsx"}) {
		t.Errorf("Files = %v, want [src/LoginForm.jsx]", result.Files)
	}

	if len(inv.calls) != 1 {
		t.Fatalf("agent invoked %d times, want 1", len(inv.calls))
	}
	call := inv.calls[0]
	if call.workDir != dir {
		t.Errorf("workDir = %q, want %q", call.workDir, dir)
	}
	if call.instruction != result.Instruction {
		t.Error("agent did not receive the composed instruction")
	}
	for _, want := range []string{
		`"login" feature`,
		"Events to track: signup, signup_failed",
		"Context: No additional context provided",
		"Files to focus on: src/LoginForm.jsx",
	} {
		if !strings.Contains(call.instruction, want) {
			t.Errorf("instruction missing %q:\n%s", want, call.instruction)
		}
	}

	if !strings.Contains(out.String(), "Changes applied successfully!") {
		t.Errorf("missing success message:\n%s", out.String())
	}
}

func TestRunDryRunSkipsDiscoveryAndAgent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app/track.py", "import posthog\n")

	inv := &fakeInvoker{}
	deps, out := testDeps(t, "signup\n\n", inv)
	deps.FindFiles = func(dir, feature string) ([]string, error) {
		t.Error("FindFiles must not run in dry-run mode")
		return nil, nil
	}

	result, err := New(deps).Run(context.Background(), Options{Directory: dir, Feature: "onboarding", DryRun: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Outcome != OutcomePreview {
		t.Errorf("Outcome = %s, want preview", result.Outcome)
	}
	if len(inv.calls) != 0 {
		t.Errorf("agent invoked %d times in dry-run", len(inv.calls))
	}
	if result.Instruction != "" || result.Files != nil {
		t.Errorf("dry-run should not compose an instruction: %+v", result)
	}

	got := out.String()
	for _, want := range []string{
		"Feature:   onboarding",
		"'timestamp': datetime.now().isoformat(),",
		"Dry run mode - no changes will be made",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, session.QuestionFeature) {
		t.Error("feature question asked despite --feature")
	}
}

func TestRunNoRelevantFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "import posthog from 'posthog-js'\n")

	inv := &fakeInvoker{}
	deps, out := testDeps(t, "signup\n\n", inv)
	deps.FindFiles = func(dir, feature string) ([]string, error) { return nil, nil }

	result, err := New(deps).Run(context.Background(), Options{Directory: dir, Feature: "login"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Outcome != OutcomeNoFiles {
		t.Errorf("Outcome = %s, want no_files", result.Outcome)
	}
	if len(inv.calls) != 0 {
		t.Error("agent must not run without candidate files")
	}
	if !strings.Contains(out.String(), "No relevant files found") {
		t.Errorf("missing warning:\n%s", out.String())
	}
}

func TestRunEnvironmentErrors(t *testing.T) {
	errNoAgent := agent.ErrNotInstalled

	tests := []struct {
		name    string
		setup   func(d *Deps)
		files   map[string]string
		wantErr error
	}{
		{
			name:    "agent missing",
			setup:   func(d *Deps) { d.CheckAgent = func(ctx context.Context) error { return errNoAgent } },
			wantErr: errNoAgent,
		},
		{
			name: "not a repository",
			setup: func(d *Deps) {
				d.EnsureRepo = func(ctx context.Context, dir string) error { return errors.New("not in a git repository") }
			},
		},
		{
			name:    "no posthog setup",
			setup:   func(d *Deps) {},
			files:   map[string]string{"index.js": "console.log(1)"},
			wantErr: detector.ErrNoSetup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for rel, content := range tt.files {
				writeFile(t, dir, rel, content)
			}

			inv := &fakeInvoker{}
			deps, out := testDeps(t, "", inv)
			var detected bool
			realDetect := deps.Detect
			deps.Detect = func(ctx context.Context, dir string) (*types.SetupDescriptor, error) {
				detected = true
				return realDetect(ctx, dir)
			}
			tt.setup(&deps)

			_, err := New(deps).Run(context.Background(), Options{Directory: dir})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if len(inv.calls) != 0 {
				t.Error("agent must not run after an environment error")
			}
			if tt.wantErr != detector.ErrNoSetup && detected {
				t.Error("detection ran after a failed precondition")
			}
			if strings.Contains(out.String(), session.QuestionEvents) {
				t.Error("user was prompted after an environment error")
			}
		})
	}
}

func TestRunAgentFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/CheckoutPage.tsx", "import { PostHog } from 'posthog-js/react'\n")

	inv := &fakeInvoker{err: errors.New("exit status 2")}
	deps, _ := testDeps(t, "checkout\ncart_viewed\n\n", inv)

	_, err := New(deps).Run(context.Background(), Options{Directory: dir})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, inv.err) {
		t.Errorf("error should wrap the agent failure, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "failed to run Cursor agent: ") {
		t.Errorf("error = %q", err.Error())
	}
	if len(inv.calls) != 1 {
		t.Errorf("agent invoked %d times, want exactly 1 (no retries)", len(inv.calls))
	}
}

// interruptingInvoker signals its own process and reports whether the
// context handed to the agent was canceled in response.
type interruptingInvoker struct {
	canceled bool
}

func (f *interruptingInvoker) Invoke(ctx context.Context, workDir, instruction string) error {
	self, err := os.FindProcess(os.Getpid())
	if err != nil {
		return err
	}
	if err := self.Signal(os.Interrupt); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		f.canceled = true
		return ctx.Err()
	case <-time.After(5 * time.Second):
		return errors.New("interrupt did not reach the agent context")
	}
}

func TestRunInterruptCancelsAgent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX signals")
	}
	dir := t.TempDir()
	writeFile(t, dir, "src/CheckoutPage.tsx", "import { PostHog } from 'posthog-js/react'\n")

	inv := &interruptingInvoker{}
	deps, _ := testDeps(t, "checkout\ncart_viewed\n\n", inv)

	_, err := New(deps).Run(context.Background(), Options{Directory: dir})
	if !inv.canceled {
		t.Fatalf("agent context was not canceled by SIGINT: %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want wrapped context.Canceled", err)
	}
}

func TestRunInputClosed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "import posthog from 'posthog-js'\n")

	deps, _ := testDeps(t, "login\n", &fakeInvoker{})
	_, err := New(deps).Run(context.Background(), Options{Directory: dir})
	if !errors.Is(err, session.ErrInputClosed) {
		t.Errorf("error = %v, want ErrInputClosed", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Relevance.MaxMatches = 2

	if got := RelevanceOptions(cfg); got.MaxMatches != 2 || got.FallbackLimit != 10 {
		t.Errorf("RelevanceOptions = %+v", got)
	}
	if got := ScanOptions(cfg); len(got.Extensions) != 6 || len(got.Ignore) != 5 {
		t.Errorf("ScanOptions = %+v", got)
	}
}
