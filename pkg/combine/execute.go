// File: pkg/combine/execute.go
package combine

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// openSink opens the output destination: a new file at path, or stdout when
// path is empty. Parent directories of the file are created.
func openSink(path string, logger *zap.Logger) (io.WriteCloser, error) {
	if path == "" {
		logger.Debug("Writing combined content to stdout")
		return nopCloser{os.Stdout}, nil
	}

	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return nil, err
	}

	outFile, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return nil, err
	}
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", path))
	return outFile, nil
}

// nopCloser keeps stdout open after the run.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
