// Package relevance narrows a file corpus to the candidates most likely to
// host a feature's analytics calls, using filename substrings only.
package relevance

import (
	"log/slog"
	"path"
	"strings"

	"github.com/daydemir/eventato/internal/scan"
)

// Options controls matching and truncation
type Options struct {
	Keywords      []string
	MaxMatches    int
	FallbackLimit int
}

// DefaultOptions returns the standard keyword set and limits
func DefaultOptions() Options {
	return Options{
		Keywords:      []string{"component", "page", "feature"},
		MaxMatches:    5,
		FallbackLimit: 10,
	}
}

// Find enumerates the corpus under root and filters it for feature
func Find(root, feature string, scanOpts scan.Options, opts Options) ([]string, error) {
	files, err := scan.Corpus(root, scanOpts)
	if err != nil {
		return nil, err
	}
	return Filter(files, feature, opts), nil
}

// Filter keeps files whose base name contains the feature or a keyword,
// case-insensitively, capped at MaxMatches. With no matches it returns the
// first FallbackLimit files of the unfiltered list.
func Filter(files []string, feature string, opts Options) []string {
	featureLower := strings.ToLower(feature)
	keywords := make([]string, 0, len(opts.Keywords))
	for _, k := range opts.Keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}

	var matched []string
	for _, f := range files {
		if matches(strings.ToLower(path.Base(f)), featureLower, keywords) {
			matched = append(matched, f)
		}
	}

	if len(matched) == 0 {
		slog.Debug("no filename matches, using fallback", "feature", feature, "corpus", len(files))
		return head(files, opts.FallbackLimit)
	}

	slog.Debug("filename matches", "feature", feature, "matched", len(matched))
	return head(matched, opts.MaxMatches)
}

func matches(base, feature string, keywords []string) bool {
	if strings.Contains(base, feature) {
		return true
	}
	for _, k := range keywords {
		if strings.Contains(base, k) {
			return true
		}
	}
	return false
}

func head(files []string, n int) []string {
	if n >= 0 && len(files) > n {
		files = files[:n]
	}
	out := make([]string, len(files))
	copy(out, files)
	return out
}
