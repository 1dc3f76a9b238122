package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/console-kit/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the registered levels with their rank and tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, l := range level.All() {
			tag, err := level.Tag(l, app.palette)
			if err != nil {
				return err
			}
			if tag == "" {
				tag = "(untagged)"
			}
			if _, err := fmt.Fprintf(out, "%3d  %-6s %s\n", int(l), l, tag); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
