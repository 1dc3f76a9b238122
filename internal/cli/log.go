/*
PURPOSE:
  Defines the 'log' subcommand.
  Emits one line at the given level through the shared Logger.

USAGE:
  console-kit log error "disk full" --prefix storage
  console-kit log fatal "out of memory" --output stdout
*/

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/daryltucker/console-kit/level"
)

var (
	logPrefix string
	logSuffix string
)

var logCmd = &cobra.Command{
	Use:   "log <level> <message...>",
	Short: "Print a single leveled line",
	Long: `Prints a message tagged with the given level. Levels, in rank order:
log, info, debug, wait, event, ready, warn, off, error, fatal.
"log" prints the message without a tag; "fatal" always includes a timestamp.`,
	Example: `  console-kit log info "server started" --suffix :8080
  console-kit log warn "cache miss" --prefix redis --datetime`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := level.Parse(args[0])
		if err != nil {
			return err
		}
		return app.logger.With(logPrefix, logSuffix).Print(lvl, strings.Join(args[1:], " "))
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVar(&logPrefix, "prefix", "", "text shown in parentheses before the message")
	logCmd.Flags().StringVar(&logSuffix, "suffix", "", "text shown in parentheses after the message")
}
