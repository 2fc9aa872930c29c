package loop

import "github.com/go-drift/looplist/pkg/errors"

// Wrap maps any position, however negative, onto [0, n).
// It panics with a KindPrecondition error when n is not positive.
func Wrap(position, n int) int {
	if n <= 0 {
		errors.Precondition("loop.Wrap", errors.ErrEmptyAdapter)
	}
	r := position % n
	if r < 0 {
		r += n
	}
	return r
}
