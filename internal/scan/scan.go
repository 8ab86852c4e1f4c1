// Package scan enumerates the source files that detection and relevance
// filtering operate on.
package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls which files are part of the corpus
type Options struct {
	// Extensions with leading dot, matched case-sensitively (".js", ".py")
	Extensions []string
	// Ignore holds doublestar patterns matched against slash-separated relative paths
	Ignore []string
}

// Corpus walks root and returns relative, slash-separated paths of matching files.
// Hidden files and directories are skipped. The result is in lexical walk order.
func Corpus(root string, opts Options) ([]string, error) {
	for _, pattern := range opts.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	allowed := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}

	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == root {
				return walkErr
			}
			slog.Debug("skipping unreadable path", "path", p, "error", walkErr)
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// A directory is pruned when anything inside it would be ignored
			if Ignored(path.Join(rel, "x"), opts.Ignore) {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := allowed[path.Ext(rel)]; !ok {
			return nil
		}
		if Ignored(rel, opts.Ignore) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	slog.Debug("scanned corpus", "root", root, "files", len(files))
	return files, nil
}

// Ignored reports whether rel matches any of the ignore patterns
func Ignored(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
