package cmd

import (
	"treecat/pkg/combine"

	"github.com/spf13/cobra"
)

const rootLong = `treecat walks a directory, honours its .gitignore, and writes every matching
file between <<<START_FILE:path>> and <<<END_FILE:path>> markers.

Trailing arguments restrict the output to the given file extensions
(case-insensitive, without the leading dot). With none, every file is included.`

// NewRootCmd builds the command tree: the root command walks a directory,
// subcommands provide auxiliary information.
func NewRootCmd() *cobra.Command {
	args := &combine.Arguments{}

	rootCmd := &cobra.Command{
		Use:   "treecat [flags] [--] [EXT...]",
		Short: "treecat concatenates a directory tree into a single stream",
		Long:  rootLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, positional []string) error {
			return runCombine(args, positional)
		},
		SilenceUsage: true,
	}

	bindCombineFlags(rootCmd, args)
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
