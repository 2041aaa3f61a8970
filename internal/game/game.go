// Package game runs one round: draw a secret, prompt, read a line, echo it.
package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/idilsaglam/guess/internal/model"
	"github.com/idilsaglam/guess/internal/randrange"
)

const prompt = "Please input your guess."

var (
	// ErrReadLine wraps every failure to obtain an input line: end of
	// stream before any byte, a reader error, or invalid UTF-8.
	ErrReadLine = errors.New("failed to read line")
	// ErrWrite wraps failures writing to the output stream.
	ErrWrite = errors.New("failed to write output")

	errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Picker draws an int from [lo, hi]. *randrange.Randomizer satisfies it.
type Picker interface {
	Between(lo, hi int) (int, error)
}

// Deps are the streams and collaborators a round needs.
type Deps struct {
	In     io.Reader
	Out    io.Writer
	Picker Picker
	Logger *slog.Logger
}

// Options tune the round.
type Options struct {
	Range randrange.Range // secret is drawn from here, bounds inclusive
}

// DefaultOptions draws from [1, 100].
func DefaultOptions() Options {
	return Options{Range: randrange.DefaultRange}
}

// Play runs the sequence once. It never retries: the first failure is
// returned and nothing further is printed.
func Play(deps Deps, opt Options) (model.Round, error) {
	var round model.Round
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if err := opt.Range.Validate(); err != nil {
		return round, err
	}

	if err := writeLine(deps.Out, prompt); err != nil {
		return round, err
	}

	n, err := deps.Picker.Between(opt.Range.Lower, opt.Range.Upper)
	if err != nil {
		return round, fmt.Errorf("pick secret: %w", err)
	}
	round.Secret = model.SecretNumber(n)
	log.Debug("secret.generated", "secret", n, "range", opt.Range.String())

	if err := writeLine(deps.Out, fmt.Sprintf("The secret number is: %d", round.Secret)); err != nil {
		return round, err
	}

	guess, err := readLine(deps.In)
	if err != nil {
		log.Error("guess.read_failed", "err", err.Error(), "partial_bytes", len(guess))
		return round, err
	}
	round.Guess = guess
	log.Debug("guess.read", "bytes", len(guess))

	// The guess keeps its newline, if any, so this line usually ends with a blank one.
	if err := writeLine(deps.Out, "You guessed: "+string(round.Guess)); err != nil {
		return round, err
	}
	return round, nil
}

// readLine reads up to and including the first '\n'. A final line without a
// newline is accepted; end of stream with nothing read is a failure, and so
// is a line that is not valid UTF-8.
func readLine(r io.Reader) (model.GuessInput, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return model.GuessInput(line), fmt.Errorf("%w: %w", ErrReadLine, err)
	}
	if !utf8.ValidString(line) {
		return model.GuessInput(line), fmt.Errorf("%w: %w", ErrReadLine, errInvalidUTF8)
	}
	return model.GuessInput(line), nil
}

func writeLine(w io.Writer, s string) error {
	if _, err := fmt.Fprintln(w, s); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
