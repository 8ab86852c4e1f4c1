// Package detector finds an existing PostHog integration in a source tree.
//
// Detection is a single-match heuristic: files are classified independently
// and the first positive classification in corpus order wins. Evidence is
// never aggregated across files.
package detector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/daydemir/eventato/internal/scan"
	"github.com/daydemir/eventato/internal/types"
	"golang.org/x/sync/errgroup"
)

// ErrNoSetup is returned by callers when Detect finds nothing
var ErrNoSetup = errors.New("no PostHog setup detected. Please ensure PostHog is installed and configured in your project")

// UsagePattern is the canonical capture call for every flavor
const UsagePattern = "posthog.capture()"

// Canonical import statements per flavor
const (
	ImportJavaScript = "import posthog from 'posthog-js'"
	ImportReact      = "import { PostHog } from 'posthog-js/react'"
	ImportPython     = "import posthog"
)

var scriptExts = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

// Detect scans the corpus under root and returns the setup of the first file
// that matches a recognized import idiom, or nil when none does.
func Detect(ctx context.Context, root string, opts scan.Options) (*types.SetupDescriptor, error) {
	files, err := scan.Corpus(root, opts)
	if err != nil {
		return nil, err
	}
	return DetectFiles(ctx, root, files)
}

// DetectFiles classifies the given files (relative to root) concurrently.
// The result equals a sequential scan that stops at the first match: a read
// error only surfaces when no earlier file matched.
func DetectFiles(ctx context.Context, root string, files []string) (*types.SetupDescriptor, error) {
	results := make([]*types.SetupDescriptor, len(files))
	readErrs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				readErrs[i] = fmt.Errorf("failed to read %s: %w", rel, err)
				return nil
			}
			results[i] = Classify(rel, string(content))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, setup := range results {
		if readErrs[i] != nil {
			return nil, readErrs[i]
		}
		if setup != nil {
			slog.Debug("detected posthog setup", "flavor", setup.Flavor, "file", setup.SourceFiles[0])
			return setup, nil
		}
	}

	slog.Debug("no posthog setup found", "files", len(files))
	return nil, nil
}

// Classify inspects a single file's content and returns its setup, or nil
func Classify(rel, content string) *types.SetupDescriptor {
	if !strings.Contains(content, "posthog") && !strings.Contains(content, "PostHog") {
		return nil
	}

	var flavor types.Flavor
	var importStatement string

	switch ext := path.Ext(rel); {
	case scriptExts[ext]:
		switch {
		case strings.Contains(content, "import posthog") || strings.Contains(content, "from 'posthog-js'"):
			flavor, importStatement = types.FlavorJavaScript, ImportJavaScript
		case strings.Contains(content, "import { PostHog }") || strings.Contains(content, "from 'posthog-js/react'"):
			flavor, importStatement = types.FlavorReact, ImportReact
		default:
			return nil
		}
	case ext == ".py":
		if !strings.Contains(content, "import posthog") && !strings.Contains(content, "from posthog") {
			return nil
		}
		flavor, importStatement = types.FlavorPython, ImportPython
	default:
		return nil
	}

	return &types.SetupDescriptor{
		Flavor:          flavor,
		ImportStatement: importStatement,
		UsagePattern:    UsagePattern,
		SourceFiles:     []string{rel},
	}
}
