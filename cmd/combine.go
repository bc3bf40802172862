package cmd

import (
	"fmt"

	"treecat/pkg/combine"
	"treecat/pkg/logging"
	"treecat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bindCombineFlags registers the walker flags on cmd.
func bindCombineFlags(cmd *cobra.Command, args *combine.Arguments) {
	flags := cmd.Flags()
	flags.StringVarP(&args.Root, "path", "p", ".", "Directory to scan")
	flags.StringVarP(&args.Output, "output", "o", "", "Output file (default: standard output)")
	flags.BoolVarP(&args.IncludeBinary, "include-binary", "b", false, "Include non-UTF-8 files as base64")
	flags.StringVarP(&args.Tree, "tree", "t", "", "Also write a tree of the included files to this file")
	flags.StringArrayVarP(&args.IgnorePatterns, "ignore", "i", nil, "Additional gitignore-style pattern (repeatable)")
	flags.IntVar(&args.MaxFileSizeKB, "max-size", 0, "Skip files larger than this many KB (0: no limit)")
	flags.BoolVarP(&args.Verbose, "verbose", "v", false, "Enable debug logging")
}

// runCombine sets up logging and runs the combine process.
func runCombine(args *combine.Arguments, positional []string) error {
	if err := logging.Setup(args.Verbose, "treecat", version.Get().Version); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := logging.Logger

	args.Extensions = positional
	logger.Debug("Parsed arguments",
		zap.String("path", args.Root),
		zap.String("output", args.Output),
		zap.Strings("extensions", args.Extensions),
		zap.Bool("includeBinary", args.IncludeBinary))

	if err := combine.RunCombine(args, logger); err != nil {
		return fmt.Errorf("treecat execution failed: %w", err)
	}
	return nil
}
