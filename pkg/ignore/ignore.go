// Package ignore evaluates .gitignore rules for paths relative to the scan root.
package ignore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

// FileName is the ignore file looked up at the scan root.
const FileName = ".gitignore"

// IgnorePattern couples a compiled gitignore pattern with its origin.
type IgnorePattern struct {
	Pattern gitignore.Pattern // Compiled pattern.
	Negate  bool              // Indicates if the pattern is a negation (starts with '!').
	Line    string            // Original pattern line.
	LineNo  int               // Line number in the source (1-based).
	Source  string            // Ignore file the line came from; empty for patterns given directly.

	nameOnly bool // no slash before the end, so only the final path component is tested
}

// GitIgnore represents a collection of ignore patterns. The zero value
// matches nothing.
type GitIgnore struct {
	Patterns []*IgnorePattern // List of compiled ignore patterns.
	logger   *zap.Logger
}

// NewGitIgnore initializes a GitIgnore instance with an optional logger.
func NewGitIgnore(logger *zap.Logger) *GitIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitIgnore{
		Patterns: []*IgnorePattern{},
		logger:   logger,
	}
}

// LoadIgnoreFiles loads the ignore file at localPath on fs. A missing or
// unreadable file yields a matcher that ignores nothing.
func LoadIgnoreFiles(fs billy.Filesystem, localPath string, logger *zap.Logger) *GitIgnore {
	gi := NewGitIgnore(logger)
	if localPath == "" {
		return gi
	}

	if err := gi.CompileIgnoreFile(fs, localPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			gi.logger.Debug("No ignore file found", zap.String("filePath", localPath))
		} else {
			gi.logger.Warn("Failed to load ignore file, ignoring nothing", zap.String("filePath", localPath), zap.Error(err))
		}
		gi.Patterns = gi.Patterns[:0]
	}
	return gi
}

// CompileIgnoreLines compiles a set of ignore pattern lines and adds them to the GitIgnore instance.
// The patterns carry no Source and are numbered by their position in lines.
func (gi *GitIgnore) CompileIgnoreLines(lines ...string) {
	gi.compileLines("", lines)
}

func (gi *GitIgnore) compileLines(source string, lines []string) {
	for i, line := range lines {
		pattern, negate, nameOnly := parsePatternLine(line)
		if pattern == nil {
			continue
		}
		ip := &IgnorePattern{
			Pattern:  pattern,
			Negate:   negate,
			Line:     line,
			LineNo:   i + 1,
			Source:   source,
			nameOnly: nameOnly,
		}
		gi.Patterns = append(gi.Patterns, ip)
		gi.log().Debug("Compiled ignore pattern",
			zap.String("source", ip.Source),
			zap.Int("lineNo", ip.LineNo),
			zap.String("pattern", ip.Line),
			zap.Bool("negate", ip.Negate))
	}
}

// CompileIgnoreFile reads an ignore file, parses its lines, and adds them to the GitIgnore instance.
func (gi *GitIgnore) CompileIgnoreFile(fs billy.Filesystem, fpath string) error {
	f, err := fs.Open(fpath)
	if err != nil {
		return err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	gi.compileLines(fpath, lines)
	gi.log().Debug("Compiled ignore patterns", zap.String("filePath", fpath), zap.Int("lineCount", len(lines)))
	return nil
}

// MatchesPath checks if a path matches the ignore patterns. The path is
// relative to the root; a trailing slash marks a directory.
func (gi *GitIgnore) MatchesPath(path string) bool {
	matches, _ := gi.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern checks if a path matches any ignore pattern and returns
// the pattern that decided the outcome. The last pattern matching the entry
// itself wins. A path inside an excluded directory is excluded and cannot be
// re-included; the returned pattern is then the one excluding the directory.
func (gi *GitIgnore) MatchesPathWithPattern(path string) (bool, *IgnorePattern) {
	if gi == nil || len(gi.Patterns) == 0 {
		return false, nil
	}

	parts, isDir := splitPath(path)
	if len(parts) == 0 {
		return false, nil
	}

	for i := 1; i < len(parts); i++ {
		if excluded, pattern := gi.decide(parts[:i], true); excluded {
			return true, pattern
		}
	}
	return gi.decide(parts, isDir)
}

// decide applies the patterns to one entry, ignoring hits on its parents.
func (gi *GitIgnore) decide(parts []string, isDir bool) (bool, *IgnorePattern) {
	for i := len(gi.Patterns) - 1; i >= 0; i-- {
		pattern := gi.Patterns[i]
		switch pattern.matchEntry(parts, isDir) {
		case gitignore.Exclude:
			return true, pattern
		case gitignore.Include:
			return false, pattern
		}
	}
	return false, nil
}

// matchEntry matches the pattern against the last component of parts only.
// go-git reports a hit when any leading directory matches, which would let a
// rule for a parent decide for everything below it.
func (p *IgnorePattern) matchEntry(parts []string, isDir bool) gitignore.MatchResult {
	if p.nameOnly {
		return p.Pattern.Match(parts[len(parts)-1:], isDir)
	}

	result := p.Pattern.Match(parts, isDir)
	if result == gitignore.NoMatch {
		return result
	}
	for i := 1; i < len(parts); i++ {
		if p.Pattern.Match(parts[:i], true) != gitignore.NoMatch {
			return gitignore.NoMatch
		}
	}
	return result
}

func (gi *GitIgnore) log() *zap.Logger {
	if gi.logger == nil {
		return zap.NewNop()
	}
	return gi.logger
}

// splitPath converts a relative path into its components and reports whether
// it denotes a directory.
func splitPath(path string) ([]string, bool) {
	normalized := normalizePath(path)
	isDir := strings.HasSuffix(normalized, "/")
	normalized = strings.Trim(normalized, "/")
	if normalized == "" || normalized == "." {
		return nil, isDir
	}
	return strings.Split(normalized, "/"), isDir
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}

// parsePatternLine turns one ignore file line into a pattern, a negation flag
// and whether the pattern applies to names rather than paths.
// Blank lines and comments yield nil. Escaped "\#" and "\!" prefixes are left to
// the glob matcher, which treats them as literals.
func parsePatternLine(line string) (gitignore.Pattern, bool, bool) {
	trimmedLine := strings.TrimRight(line, "\r")

	// Unescaped trailing spaces are insignificant.
	for strings.HasSuffix(trimmedLine, " ") && !strings.HasSuffix(trimmedLine, `\ `) {
		trimmedLine = trimmedLine[:len(trimmedLine)-1]
	}

	if strings.TrimSpace(trimmedLine) == "" || strings.HasPrefix(trimmedLine, "#") {
		return nil, false, false
	}

	negate := strings.HasPrefix(trimmedLine, "!")
	body := strings.TrimSuffix(strings.TrimPrefix(trimmedLine, "!"), "/")
	nameOnly := !strings.Contains(body, "/")
	return gitignore.ParsePattern(trimmedLine, nil), negate, nameOnly
}
