/*
PURPOSE:
  Defines the 'spin' subcommand.
  Runs a spinner through a list of steps, redrawing the status line in
  place, then prints a ready line.

REQUIREMENTS:
  Implementation-discovered:
  - Ctrl-C stops the spinner cleanly so the terminal line is finalized.
  - An interrupted run reports ErrInterrupted; main exits 130 without
    printing it, since the warning line already says what happened.
  - Each step forces a redraw so the new text shows immediately.

USAGE:
  console-kit spin -m "installing" --step "resolving" --step "linking" --duration 1s
*/

package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/daryltucker/console-kit/icon"
	"github.com/daryltucker/console-kit/level"
	"github.com/daryltucker/console-kit/spinner"
)

var (
	spinMessage  string
	spinSteps    []string
	spinDuration time.Duration
	spinInterval time.Duration
	spinCharSet  int
	spinPrefix   string
	spinSuffix   string
)

// ErrInterrupted is returned when a command stops early on Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Animate a status line through a series of steps",
	Example: `  console-kit spin -m "deploying" --step "uploading" --step "restarting" --duration 2s
  console-kit spin -m "waiting" --charset 14 --interval 80ms`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSpinner(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		s.Start(spinMessage, spinPrefix, spinSuffix)
		interrupted := !sleep(ctx, spinDuration)
		for _, step := range spinSteps {
			if interrupted {
				break
			}
			s.Update(step, true, nil)
			interrupted = !sleep(ctx, spinDuration)
		}
		s.Stop()

		if err := s.Err(); err != nil {
			return err
		}
		if interrupted {
			app.logger.Warn(icon.Default.Cross + " interrupted")
			return ErrInterrupted
		}
		app.logger.Ready(icon.Default.Tick + " done")
		return nil
	},
}

func newSpinner(cmd *cobra.Command) (*spinner.Spinner, error) {
	sc := app.cfg.Spinner

	lvl, err := level.Parse(sc.Level)
	if err != nil {
		return nil, err
	}

	opts := []spinner.Option{
		spinner.WithWriter(cmd.OutOrStdout()),
		spinner.WithPalette(app.palette),
		spinner.WithInterval(time.Duration(sc.Interval)),
		spinner.WithDefaults(spinner.Display{Level: lvl, Prefix: sc.Prefix, Suffix: sc.Suffix}),
	}
	if lvl == level.Log {
		opts = append(opts, spinner.WithUntagged())
	}
	if len(sc.Frames) > 0 {
		opts = append(opts, spinner.WithFrames(sc.Frames...))
	}
	if sc.CharSet > 0 {
		opts = append(opts, spinner.WithCharSet(sc.CharSet))
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		opts = append(opts, spinner.WithInterval(spinInterval))
	}
	if flags.Changed("charset") {
		opts = append(opts, spinner.WithCharSet(spinCharSet))
	}

	return spinner.New(opts...), nil
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func init() {
	rootCmd.AddCommand(spinCmd)

	spinCmd.Flags().StringVarP(&spinMessage, "message", "m", "working", "initial status text")
	spinCmd.Flags().StringArrayVar(&spinSteps, "step", nil, "status text for each following step (repeatable)")
	spinCmd.Flags().DurationVar(&spinDuration, "duration", time.Second, "time spent on each step")
	spinCmd.Flags().DurationVar(&spinInterval, "interval", spinner.DefaultInterval, "delay between frames")
	spinCmd.Flags().IntVar(&spinCharSet, "charset", 0, "frame set number from github.com/briandowns/spinner")
	spinCmd.Flags().StringVar(&spinPrefix, "prefix", "", "text shown in parentheses before the message")
	spinCmd.Flags().StringVar(&spinSuffix, "suffix", "", "text shown in parentheses after the message")
}
