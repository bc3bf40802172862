package combine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFileExtension(t *testing.T) {
	tests := []struct {
		name   string
		ext    string
		hasExt bool
	}{
		{"main.go", "go", true},
		{"archive.tar.gz", "gz", true},
		{"README", "", false},
		{".gitignore", "", false},
		{".config.yaml", "yaml", true},
		{"trailing.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := fileExtension(tt.name)
			assert.Equal(t, tt.hasExt, ok)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestHasAllowedExtension(t *testing.T) {
	allowed := map[string]struct{}{"txt": {}, "md": {}}

	assert.True(t, hasAllowedExtension("a.txt", allowed))
	assert.True(t, hasAllowedExtension("A.TXT", allowed))
	assert.True(t, hasAllowedExtension("notes.Md", allowed))
	assert.False(t, hasAllowedExtension("a.go", allowed))
	assert.False(t, hasAllowedExtension("LICENSE", allowed))
	assert.True(t, hasAllowedExtension("LICENSE", map[string]struct{}{}))
}

func TestWithExtensionsNormalizes(t *testing.T) {
	w := NewWalker(nil, WithExtensions("TXT", ".Md", " go ", ""))
	assert.Equal(t, map[string]struct{}{"txt": {}, "md": {}, "go": {}}, w.extensions)
}

func TestWriteBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBlock(&buf, FileContent{Path: "src/a.txt", Content: "line1\nline2"}))
	assert.Equal(t, "<<<START_FILE:src/a.txt>>\nline1\nline2\n<<<END_FILE:src/a.txt>>\n", buf.String())
}

func TestIsText(t *testing.T) {
	assert.True(t, isText([]byte("plain ascii")))
	assert.True(t, isText([]byte("héllo wörld ✓")))
	assert.True(t, isText(nil))
	assert.False(t, isText(invalidUTF8))
	assert.Equal(t, "//4AgZ8=", encodeBinary(invalidUTF8))
}

func TestProcessSingleFile_BinaryDiagnostics(t *testing.T) {
	fs := newTestFS(t, map[string][]byte{"b.bin": invalidUTF8})

	core, logs := observer.New(zapcore.DebugLevel)
	_, emitted, err := ProcessSingleFile(fs, "b.bin", "b.bin", false, zap.New(core))
	require.NoError(t, err)
	assert.False(t, emitted)

	entries := logs.FilterMessage("Skipping non-UTF-8 file").All()
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ContextMap()["mimeType"])

	core, logs = observer.New(zapcore.InfoLevel)
	content, emitted, err := ProcessSingleFile(fs, "b.bin", "b.bin", true, zap.New(core))
	require.NoError(t, err)
	assert.True(t, emitted)
	assert.Equal(t, BinaryPrefix+encodeBinary(invalidUTF8), content.Content)
	assert.Zero(t, logs.Len())
}
