package randrange

import "fmt"

// DefaultRange is the range the secret number is drawn from.
var DefaultRange = Range{Lower: 1, Upper: 100}

// Range is a closed interval of ints.
type Range struct {
	Lower int
	Upper int
}

// Validate reports ErrInvalidRange when Lower is greater than Upper.
func (rg Range) Validate() error {
	if rg.Lower > rg.Upper {
		return fmt.Errorf("%w: %s", ErrInvalidRange, rg)
	}
	return nil
}

// Contains reports whether n lies within the range, bounds included.
func (rg Range) Contains(n int) bool {
	return n >= rg.Lower && n <= rg.Upper
}

// String formats the range as "[Lower, Upper]".
func (rg Range) String() string {
	return fmt.Sprintf("[%d, %d]", rg.Lower, rg.Upper)
}
