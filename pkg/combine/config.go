// File: pkg/combine/config.go
package combine

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// IgnoreParser matches root-relative, slash-separated paths. Directories
// carry a trailing slash.
type IgnoreParser interface {
	MatchesPath(path string) bool
}

// Option configures a Walker.
type Option func(*Walker)

// WithIgnore sets the ignore rule set consulted for every entry.
func WithIgnore(gi IgnoreParser) Option {
	return func(w *Walker) {
		w.gi = gi
	}
}

// WithExtensions sets the extension allow-list. Entries are lowercased and
// a leading dot is dropped.
func WithExtensions(exts ...string) Option {
	return func(w *Walker) {
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext == "" {
				continue
			}
			w.extensions[ext] = struct{}{}
		}
	}
}

// WithIncludeBinary makes the walker emit non-UTF-8 files as base64.
func WithIncludeBinary(include bool) Option {
	return func(w *Walker) {
		w.includeBinary = include
	}
}

// WithMaxFileSizeKB skips files larger than the limit. Zero disables the check.
func WithMaxFileSizeKB(kb int) Option {
	return func(w *Walker) {
		w.maxFileSizeKB = kb
	}
}

// WithDisplayRoot sets the prefix joined with relative paths in the markers.
func WithDisplayRoot(root string) Option {
	return func(w *Walker) {
		w.displayRoot = root
	}
}

// WithExclude removes specific root-relative paths from the walk.
func WithExclude(paths ...string) Option {
	return func(w *Walker) {
		for _, p := range paths {
			w.exclude[filepath.ToSlash(p)] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}
