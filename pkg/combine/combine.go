package combine

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"treecat/pkg/ignore"

	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RunCombine orchestrates the file combination process.
// It validates the root, opens the output, loads ignore rules, walks the tree
// and optionally writes the tree listing of included files.
func RunCombine(args *Arguments, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	root := args.Root
	if root == "" {
		root = "."
	}
	logger.Info("Starting combination process", zap.String("directory", root))

	info, statErr := os.Stat(root)
	if statErr != nil {
		logger.Error("Failed to access root directory", zap.String("directory", root), zap.Error(statErr))
		return fmt.Errorf("%w: %w", ErrRootNotDirectory, statErr)
	}
	if !info.IsDir() {
		logger.Error("Root path is not a directory", zap.String("directory", root))
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	fs := osfs.New(root)

	gi := ignore.LoadIgnoreFiles(fs, ignore.FileName, logger)
	if len(args.IgnorePatterns) > 0 {
		gi.CompileIgnoreLines(args.IgnorePatterns...)
		logger.Debug("Added command-line ignore patterns", zap.Int("count", len(args.IgnorePatterns)))
	}

	sink, err := openSink(args.Output, logger)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputSink, err)
	}
	defer func() {
		if closeErr := sink.Close(); closeErr != nil {
			logger.Error("Failed to close output", zap.String("file", args.Output), zap.Error(closeErr))
			err = multierr.Append(err, fmt.Errorf("%w: %w", ErrOutputSink, closeErr))
		}
	}()

	var exclude []string
	for _, generated := range []string{args.Output, args.Tree} {
		if rel, ok := pathWithinRoot(root, generated); ok {
			exclude = append(exclude, rel)
		}
	}

	walker := NewWalker(fs,
		WithDisplayRoot(root),
		WithIgnore(gi),
		WithExtensions(args.Extensions...),
		WithIncludeBinary(args.IncludeBinary),
		WithMaxFileSizeKB(args.MaxFileSizeKB),
		WithExclude(exclude...),
		WithLogger(logger),
	)

	writer := bufio.NewWriter(sink)
	stats, err := walker.Walk(writer)
	if err != nil {
		logger.Error("Failed to combine files", zap.Error(err))
		return err
	}
	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output", zap.String("file", args.Output), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrOutputSink, err)
	}

	if args.Tree != "" {
		if err := ensureDirectory(filepath.Dir(args.Tree), logger); err != nil {
			return fmt.Errorf("failed to create tree output directory: %w", err)
		}
		if err := writeToFile(args.Tree, []byte(GenerateTree(root, stats.Files)), 0o644, logger); err != nil {
			return fmt.Errorf("failed to write tree structure: %w", err)
		}
	}

	logger.Info("Combination process completed",
		zap.Int("totalFiles", len(stats.Files)),
		zap.Int("ignored", stats.Ignored),
		zap.Int("filtered", stats.Filtered),
		zap.Int("skippedBinary", stats.SkippedBinary),
		zap.Int("errors", stats.Errors),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// pathWithinRoot returns the root-relative path of a generated file when it
// lies inside the root.
func pathWithinRoot(root, output string) (string, bool) {
	if output == "" {
		return "", false
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absOutput)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
