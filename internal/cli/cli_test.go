package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/daryltucker/console-kit/level"
	"github.com/daryltucker/console-kit/paint"
)

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--color", "never"))
	err := Execute()
	return out.String(), err
}

func TestLevelsCommand(t *testing.T) {
	out, err := run(t, "levels")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	for _, want := range []string{"  0  log    (untagged)", " 80  error  error           -"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != len(level.All()) {
		t.Errorf("expected %d lines, got %d", len(level.All()), n)
	}
}

func TestLogCommandRawStdout(t *testing.T) {
	out, err := run(t, "log", "error", "disk", "full", "--output", "stdout")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if want := "error           - disk full"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestLogCommandDecorations(t *testing.T) {
	out, err := run(t, "log", "warn", "cache miss", "--prefix", "redis", "--suffix", "3x")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if want := "warn            - (redis) cache miss (3x)\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestLogCommandUnknownLevel(t *testing.T) {
	_, err := run(t, "log", "trace", "x")
	if !errors.Is(err, level.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestStampCommand(t *testing.T) {
	out, err := run(t, "stamp", "--heading", "Next", "-m", "cd app", "-m", "go run .", "--box", "classic")
	if err != nil {
		t.Fatalf("stamp: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "+---") || !strings.Contains(lines[4], "cd app") {
		t.Errorf("unexpected box:\n%s", out)
	}
	for _, line := range lines {
		if w := paint.VisibleWidth(line); w != 56 {
			t.Errorf("line width %d: %q", w, line)
		}
	}
}

func TestSpinCommand(t *testing.T) {
	out, err := run(t, "spin", "-m", "building", "--step", "linking", "--duration", "20ms", "--interval", "5ms")
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if !strings.Contains(out, "building") || !strings.Contains(out, "linking") {
		t.Errorf("steps missing from output %q", out)
	}
	if !strings.HasSuffix(out, "done\n") {
		t.Errorf("expected ready line at the end, got %q", out)
	}
}

func TestSpinCommandInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	spinCmd.SetContext(ctx)
	t.Cleanup(func() { spinCmd.SetContext(context.Background()) })

	out, err := run(t, "spin", "-m", "building", "--step", "linking", "--duration", "1h")
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("err = %v, want ErrInterrupted", err)
	}
	if !strings.Contains(out, "interrupted") {
		t.Errorf("expected interrupted warning in %q", out)
	}
	if strings.Contains(out, "linking") || strings.Contains(out, "done") {
		t.Errorf("steps continued after interrupt: %q", out)
	}
}

func TestRecordFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.jsonl")
	if _, err := run(t, "log", "info", "hello", "--record", path); err != nil {
		t.Fatalf("log: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"level":"info"`) || !strings.Contains(string(data), `"message":"hello"`) {
		t.Errorf("unexpected recording %q", data)
	}
}

func TestInvalidOutputFlag(t *testing.T) {
	if _, err := run(t, "log", "info", "x", "--output", "stderr"); err == nil {
		t.Error("expected error for invalid --output")
	}
}
