/*
PURPOSE:
  Defines the 'stamp' subcommand.
  Renders a bordered box with an optional heading and one row per message.

USAGE:
  console-kit stamp --heading "Next steps" -m "cd app" -m "go run ." --instruction
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/console-kit/stamp"
)

var (
	stampHeading     string
	stampMessages    []string
	stampBox         string
	stampInstruction bool
)

var stampCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Print messages inside a bordered box",
	Example: `  console-kit stamp --heading "Ready" -m "Local: http://localhost:3000"
  console-kit stamp --box double --instruction -m "npm install" -m "npm run dev"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := stamp.New(app.logger).
			SetPalette(app.palette).
			SetBoxType(app.cfg.Stamp.Box).
			SetInstruction(app.cfg.Stamp.Instruction)

		if cmd.Flags().Changed("box") {
			s.SetBoxType(stampBox)
		}
		if cmd.Flags().Changed("instruction") {
			s.SetInstruction(stampInstruction)
		}
		if stampHeading != "" {
			s.SetHeading(stampHeading)
		}
		for _, m := range stampMessages {
			s.AddMessage(m)
		}

		return s.Render()
	},
}

func init() {
	rootCmd.AddCommand(stampCmd)

	stampCmd.Flags().StringVar(&stampHeading, "heading", "", "heading shown above a separator")
	stampCmd.Flags().StringArrayVarP(&stampMessages, "message", "m", nil, "message row (repeatable)")
	stampCmd.Flags().StringVar(&stampBox, "box", "", "border style: single, double, round, bold, classic")
	stampCmd.Flags().BoolVar(&stampInstruction, "instruction", false, "prefix rows with a marker")
}
