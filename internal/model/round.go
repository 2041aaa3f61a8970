package model

// SecretNumber is drawn once per run and only ever displayed.
type SecretNumber int

// GuessInput is the raw line read from stdin, terminator included.
// It is never parsed.
type GuessInput string

// Round is what a single run produced.
type Round struct {
	Secret SecretNumber
	Guess  GuessInput
}
