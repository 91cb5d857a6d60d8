package cli

import (
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/dirpeek/internal/app"
	"github.com/kk-code-lab/dirpeek/internal/logger"
	"github.com/kk-code-lab/dirpeek/internal/termsize"
)

// Version is injected at build time via -ldflags
var Version = "dev"

var terminalWidth termsize.Source = termsize.Width

// NewRootCommand creates the dirpeek command.
func NewRootCommand() *cobra.Command {
	var (
		maxLines int
		debug    bool
	)

	cmd := &cobra.Command{
		Use:   "dirpeek [directory]",
		Short: "Show a preview of the directory contents",
		Long: `dirpeek prints a short, column-aligned preview of a directory.

Hidden entries are skipped. When the listing would not fit in the requested
number of lines, or when reading the directory is slow, only directories are
shown.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Errors are reported once by main
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			var log *logger.Logger
			if debug {
				log = logger.New(cmd.ErrOrStderr(), "debug")
			}

			return apppkg.Run(apppkg.Options{
				Path:     path,
				MaxLines: maxLines,
				Width:    terminalWidth,
				Out:      cmd.OutOrStdout(),
				Logger:   log,
			})
		},
	}

	cmd.Flags().IntVarP(&maxLines, "max-lines", "l", apppkg.DefaultMaxLines, "Maximum number of lines to display")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print scan and layout diagnostics to stderr")

	return cmd
}
