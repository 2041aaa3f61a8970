package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/guess/internal/game"
	"github.com/idilsaglam/guess/internal/logger"
	"github.com/idilsaglam/guess/internal/randrange"
	"github.com/idilsaglam/guess/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var errUsage = errors.New("usage")

// Streams are the process's standard streams.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Options tune a run. Nil fields mean a wall-clock seeded randomizer,
// the [1, 100] range and no logging.
type Options struct {
	Picker game.Picker
	Game   *game.Options
	Logger *slog.Logger
}

func Execute() int {
	return Run(os.Args[1:], Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}, Options{})
}

// Run executes the root command and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, s Streams, opt Options) int {
	if opt.Picker == nil {
		opt.Picker = randrange.NewFromTime()
	}
	if opt.Game == nil {
		def := game.DefaultOptions()
		opt.Game = &def
	}
	if opt.Logger == nil {
		opt.Logger = logger.Discard()
	}

	cmd := newRootCmd(s, opt)
	cmd.SetArgs(args)
	err := cmd.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage):
		ui.Fail(s.Err, err.Error())
		fmt.Fprintln(s.Err, cmd.UsageString())
		return ExitUsage
	default:
		ui.Fail(s.Err, err.Error())
		return ExitError
	}
}

func newRootCmd(s Streams, opt Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "guess",
		Short:         "guess - prints a secret number in " + opt.Game.Range.String() + " and echoes one line of input",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: guess takes no arguments, got %q", errUsage, args)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := game.Play(game.Deps{
				In:     s.In,
				Out:    s.Out,
				Picker: opt.Picker,
				Logger: opt.Logger,
			}, *opt.Game)
			return err
		},
	}
	cmd.SetIn(s.In)
	cmd.SetOut(s.Out)
	cmd.SetErr(s.Err)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}
