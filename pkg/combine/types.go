package combine

// Arguments holds the command-line arguments for the combine operation.
type Arguments struct {
	Root           string   // The directory to scan
	Output         string   // The output file for combined content; empty means stdout
	Tree           string   // Optional output file for the tree of included files
	Extensions     []string // Allowed file extensions; empty allows every file
	IgnorePatterns []string // Extra ignore patterns applied after the root .gitignore
	IncludeBinary  bool     // Emit non-UTF-8 files as base64 instead of skipping them
	MaxFileSizeKB  int      // Maximum size of files to process (in KB), 0 for no limit
	Verbose        bool     // Enables debug logging
}

// FileContent holds one block of output: the display path and its payload.
type FileContent struct {
	Path    string // The file path as rendered in the markers
	Content string // Text content, or the base64 payload for binary files
}

// Stats summarizes a completed walk.
type Stats struct {
	Files         []string // Slash-separated paths, relative to the root, of every written block
	Ignored       int      // Entries matched by an ignore rule
	Filtered      int      // Files rejected by extension or size
	SkippedBinary int      // Non-UTF-8 files left out
	Errors        int      // Entries that could not be read
}

// Output markers.
const (
	StartMarkerFormat = "<<<START_FILE:%s>>\n"
	EndMarkerFormat   = "<<<END_FILE:%s>>\n"
	BinaryPrefix      = "[Binary data encoded as base64]:\n"
)
