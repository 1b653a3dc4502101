package vector_math

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch reports an operand of a kind the operation does not accept.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrShapeMismatch reports a sequence operand or index range of the wrong length. It wraps
	// ErrTypeMismatch, so errors.Is(err, ErrTypeMismatch) also holds for shape errors.
	ErrShapeMismatch = fmt.Errorf("%w: shape mismatch", ErrTypeMismatch)
	// ErrDegenerateInput reports arguments that would produce a singular projection.
	ErrDegenerateInput = errors.New("degenerate input")
)

func shapeErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShapeMismatch, fmt.Sprintf(format, args...))
}
