package combine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func TestRunCombine(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":    "dist/\n*.log\n",
		"main.go":       "package main",
		"README.md":     "# readme",
		"dist/app.go":   "package dist",
		"debug.log":     "log",
		"internal/x.go": "package internal",
	})
	output := filepath.Join(t.TempDir(), "nested", "out.txt")
	tree := filepath.Join(t.TempDir(), "tree.txt")

	err := RunCombine(&Arguments{
		Root:       root,
		Output:     output,
		Tree:       tree,
		Extensions: []string{"go"},
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	expected := block(filepath.Join(root, "internal", "x.go"), "package internal") +
		block(filepath.Join(root, "main.go"), "package main")
	assert.Equal(t, expected, string(data))

	treeData, err := os.ReadFile(tree)
	require.NoError(t, err)
	assert.Equal(t, root+"/\n├── internal/\n│   └── x.go\n└── main.go\n", string(treeData))
}

func TestRunCombine_IgnorePatternsFromArguments(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.txt":      "keep",
		"skip.txt":      "skip",
		"vendor/lib.go": "lib",
	})
	output := filepath.Join(t.TempDir(), "out.txt")

	err := RunCombine(&Arguments{
		Root:           root,
		Output:         output,
		IgnorePatterns: []string{"skip.txt", "vendor/"},
	}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, block(filepath.Join(root, "keep.txt"), "keep"), string(data))
}

func TestRunCombine_OutputInsideRootIsExcluded(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":       "a",
		"bundle.txt":  "stale bundle",
		"bundle.tree": "stale tree",
	})

	err := RunCombine(&Arguments{
		Root:   root,
		Output: filepath.Join(root, "bundle.txt"),
		Tree:   filepath.Join(root, "bundle.tree"),
	}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "bundle.txt"))
	require.NoError(t, err)
	assert.Equal(t, block(filepath.Join(root, "a.txt"), "a"), string(data))
}

func TestRunCombine_FatalErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		err := RunCombine(&Arguments{Root: filepath.Join(t.TempDir(), "missing")}, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRootNotDirectory))
	})

	t.Run("root is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		err := RunCombine(&Arguments{Root: file}, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRootNotDirectory))
	})

	t.Run("output cannot be created", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"a.txt": "a"})
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		err := RunCombine(&Arguments{Root: root, Output: filepath.Join(blocker, "out.txt")}, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutputSink))
	})
}

func TestPathWithinRoot(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		output   string
		expected string
		ok       bool
	}{
		{"empty", "", "", false},
		{"inside", filepath.Join(root, "out.txt"), "out.txt", true},
		{"nested", filepath.Join(root, "a", "out.txt"), "a/out.txt", true},
		{"outside", filepath.Join(filepath.Dir(root), "out.txt"), "", false},
		{"root itself", root, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, ok := pathWithinRoot(root, tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, rel)
		})
	}
}
