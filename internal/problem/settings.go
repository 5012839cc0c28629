package problem

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned when operand bounds are inverted or fall
// outside [-MaxOperand, MaxOperand].
var ErrInvalidSettings = errors.New("invalid settings")

// Settings bounds the operands of generated questions. Both ends are inclusive.
type Settings struct {
	MinNumber int
	MaxNumber int
}

// DefaultSettings returns operands in [0, 99].
func DefaultSettings() Settings {
	return Settings{MinNumber: 0, MaxNumber: 99}
}

// Validate checks MinNumber <= MaxNumber and that both ends are valid
// operands. Bounded ends keep the range width within int.
func (s Settings) Validate() error {
	if !InRange(s.MinNumber) || !InRange(s.MaxNumber) {
		return fmt.Errorf("%w: range [%d, %d] outside [%d, %d]", ErrInvalidSettings, s.MinNumber, s.MaxNumber, -MaxOperand, MaxOperand)
	}
	if s.MinNumber > s.MaxNumber {
		return fmt.Errorf("%w: min_number %d > max_number %d", ErrInvalidSettings, s.MinNumber, s.MaxNumber)
	}
	return nil
}
