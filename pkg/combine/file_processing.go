package combine

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// ProcessSingleFile reads a file and turns it into a block. The boolean is
// false when the file is binary and binary output is disabled.
func ProcessSingleFile(fs billy.Basic, relPath, displayPath string, includeBinary bool, logger *zap.Logger) (FileContent, bool, error) {
	logger.Debug("Processing file", zap.String("filePath", displayPath))

	fileBytes, err := readFile(fs, relPath)
	if err != nil {
		return FileContent{}, false, fmt.Errorf("error reading file %s: %w", displayPath, err)
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", displayPath),
		zap.Int("contentSizeBytes", len(fileBytes)))

	if isText(fileBytes) {
		return FileContent{
			Path:    displayPath,
			Content: string(fileBytes),
		}, true, nil
	}

	if !includeBinary {
		logBinary(logger, "Skipping non-UTF-8 file", displayPath, fileBytes)
		return FileContent{}, false, nil
	}

	logBinary(logger, "Encoding binary file as base64", displayPath, fileBytes)
	return FileContent{
		Path:    displayPath,
		Content: BinaryPrefix + encodeBinary(fileBytes),
	}, true, nil
}

func readFile(fs billy.Basic, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// logBinary reports a binary file at debug level. MIME detection only runs
// when the entry is actually written.
func logBinary(logger *zap.Logger, msg, displayPath string, data []byte) {
	if ce := logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.String("filePath", displayPath),
			zap.String("mimeType", detectMIME(data)))
	}
}
