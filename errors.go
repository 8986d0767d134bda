package zippedrange

import (
	"errors"
	"fmt"
)

// ErrArity is matched by every [*ArityError] via [errors.Is].
var ErrArity = errors.New("zippedrange: at least 2 sequences are required")

// MinArity is the smallest number of sequences a range can zip.
const MinArity = 2

// ArityError reports an attempt to build a range from fewer than
// [MinArity] sequences.
type ArityError struct {
	Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("zippedrange: cannot zip %d sequence(s), need at least %d", e.Got, MinArity)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// IsArityError reports whether err (or any error in its chain) is an
// [*ArityError].
func IsArityError(err error) bool {
	if err == nil {
		return false
	}
	var ae *ArityError
	return errors.As(err, &ae)
}

// MismatchError is the panic value raised when two iterators that do not
// belong to compatible ranges are compared.
type MismatchError struct {
	// Slot is the first slot whose kinds differ, or -1 when the arities
	// differ.
	Slot int

	Left  string
	Right string
}

func (e *MismatchError) Error() string {
	if e.Slot < 0 {
		return fmt.Sprintf("zippedrange: cannot compare iterators of arity %s and %s", e.Left, e.Right)
	}
	return fmt.Sprintf("zippedrange: slot %d: cannot compare %s cursor with %s cursor", e.Slot, e.Left, e.Right)
}
