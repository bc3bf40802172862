// File: pkg/combine/helpers.go
package combine

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// shouldSkipFile determines if a file should be skipped based on its extension and size.
func shouldSkipFile(name string, info os.FileInfo, extensions map[string]struct{}, maxFileSizeKB int, logger *zap.Logger) bool {
	if !hasAllowedExtension(name, extensions) {
		logger.Debug("File extension not allowed", zap.String("file", name))
		return true
	}

	if maxFileSizeKB > 0 && info.Size() > int64(maxFileSizeKB)*1024 {
		logger.Debug("File exceeds size limit", zap.String("file", name), zap.Int64("sizeBytes", info.Size()), zap.Int("maxSizeKB", maxFileSizeKB))
		return true
	}

	return false
}

// hasAllowedExtension accepts every file when the allow-list is empty.
// Otherwise the lowercased extension must be listed; files without an
// extension are rejected.
func hasAllowedExtension(name string, extensions map[string]struct{}) bool {
	if len(extensions) == 0 {
		return true
	}
	ext, ok := fileExtension(name)
	if !ok {
		return false
	}
	_, allowed := extensions[strings.ToLower(ext)]
	return allowed
}

// fileExtension returns the text after the last dot of a file name. A dot
// that starts the name (".env") does not begin an extension.
func fileExtension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}

// WriteBlock writes one marker-delimited block.
func WriteBlock(w io.Writer, content FileContent) error {
	if _, err := fmt.Fprintf(w, StartMarkerFormat, content.Path); err != nil {
		return err
	}
	if _, err := io.WriteString(w, content.Content); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, EndMarkerFormat, content.Path)
	return err
}
