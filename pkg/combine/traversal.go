// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// Walker traverses a filesystem depth-first and writes one block per accepted file.
type Walker struct {
	fs            billy.Filesystem
	gi            IgnoreParser
	displayRoot   string
	extensions    map[string]struct{}
	exclude       map[string]struct{}
	includeBinary bool
	maxFileSizeKB int
	logger        *zap.Logger
}

// NewWalker creates a Walker over fs, whose root is the scan root.
func NewWalker(fs billy.Filesystem, opts ...Option) *Walker {
	w := &Walker{
		fs:          fs,
		displayRoot: ".",
		extensions:  make(map[string]struct{}),
		exclude:     make(map[string]struct{}),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk traverses the tree from the root and writes blocks to out. Only a
// failure to read the root directory or to write to out is returned; every
// other problem is logged and counted.
func (w *Walker) Walk(out io.Writer) (Stats, error) {
	var stats Stats
	w.logger.Debug("Starting traversal", zap.String("root", w.displayRoot))

	entries, err := w.readDir(".")
	if err != nil {
		w.logger.Error("Failed to read root directory", zap.String("root", w.displayRoot), zap.Error(err))
		return stats, fmt.Errorf("%w: %w", ErrRootNotDirectory, err)
	}

	if err := w.visitEntries(".", entries, out, &stats); err != nil {
		return stats, err
	}

	w.logger.Debug("Completed traversal",
		zap.Int("files", len(stats.Files)),
		zap.Int("ignored", stats.Ignored),
		zap.Int("filtered", stats.Filtered),
		zap.Int("skippedBinary", stats.SkippedBinary),
		zap.Int("errors", stats.Errors))
	return stats, nil
}

// visitDir reads and visits a subdirectory. Read failures are not fatal.
func (w *Walker) visitDir(dir string, out io.Writer, stats *Stats) error {
	entries, err := w.readDir(dir)
	if err != nil {
		w.logger.Warn("Failed to read directory", zap.String("directory", w.displayPath(dir)), zap.Error(err))
		stats.Errors++
		return nil
	}
	return w.visitEntries(dir, entries, out, stats)
}

func (w *Walker) visitEntries(dir string, entries []os.FileInfo, out io.Writer, stats *Stats) error {
	for _, entry := range entries {
		relPath := filepath.Join(dir, entry.Name())
		slashPath := filepath.ToSlash(relPath)

		if _, excluded := w.exclude[slashPath]; excluded {
			w.logger.Debug("Skipping excluded path", zap.String("filePath", w.displayPath(relPath)))
			continue
		}

		if w.isIgnored(slashPath, entry.IsDir()) {
			w.logger.Debug("Skipping ignored path", zap.String("filePath", w.displayPath(relPath)), zap.Bool("isDir", entry.IsDir()))
			stats.Ignored++
			continue
		}

		if entry.IsDir() {
			if err := w.visitDir(relPath, out, stats); err != nil {
				return err
			}
			continue
		}

		info, ok := w.resolveFile(relPath, entry, stats)
		if !ok {
			continue
		}

		if shouldSkipFile(entry.Name(), info, w.extensions, w.maxFileSizeKB, w.logger) {
			stats.Filtered++
			continue
		}

		content, emitted, err := ProcessSingleFile(w.fs, relPath, w.displayPath(relPath), w.includeBinary, w.logger)
		if err != nil {
			w.logger.Warn("Failed to process file", zap.String("filePath", w.displayPath(relPath)), zap.Error(err))
			stats.Errors++
			continue
		}
		if !emitted {
			stats.SkippedBinary++
			continue
		}

		if err := WriteBlock(out, content); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputSink, err)
		}
		stats.Files = append(stats.Files, slashPath)
	}
	return nil
}

// resolveFile returns the info of a non-directory entry, following file
// symlinks. Symlinked directories and special files are skipped.
func (w *Walker) resolveFile(relPath string, entry os.FileInfo, stats *Stats) (os.FileInfo, bool) {
	mode := entry.Mode()
	if mode.IsRegular() {
		return entry, true
	}

	if mode&os.ModeSymlink == 0 {
		w.logger.Debug("Skipping special file", zap.String("filePath", w.displayPath(relPath)), zap.Stringer("mode", mode))
		return nil, false
	}

	info, err := w.fs.Stat(relPath)
	if err != nil {
		w.logger.Warn("Failed to resolve symlink", zap.String("filePath", w.displayPath(relPath)), zap.Error(err))
		stats.Errors++
		return nil, false
	}
	if !info.Mode().IsRegular() {
		w.logger.Debug("Not following symlink", zap.String("filePath", w.displayPath(relPath)))
		return nil, false
	}
	return info, true
}

func (w *Walker) isIgnored(slashPath string, isDir bool) bool {
	if w.gi == nil {
		return false
	}
	if isDir {
		slashPath += "/"
	}
	return w.gi.MatchesPath(slashPath)
}

// readDir lists a directory in name order.
func (w *Walker) readDir(dir string) ([]os.FileInfo, error) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// displayPath renders a root-relative path the way it appears in the markers.
func (w *Walker) displayPath(relPath string) string {
	return filepath.Join(w.displayRoot, relPath)
}
