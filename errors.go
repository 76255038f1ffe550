package euclid

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by this package wrap exactly one of the following kinds. Use
// [errors.Is] to tell them apart.
var (
	// ErrDegenerate is returned when a construction has no unique result, such as
	// a line through two coincident points or a circle through three collinear
	// points.
	ErrDegenerate = errors.New("degenerate construction")
	// ErrParallel is returned by operations that need two lines to meet.
	ErrParallel = errors.New("lines are parallel")
	// ErrNotParallel is returned by operations that need two lines to be parallel.
	ErrNotParallel = errors.New("lines are not parallel")
	// ErrInversionCenter is returned when inverting the center of inversion.
	ErrInversionCenter = errors.New("inversion of the center is undefined")
	// ErrUnsupported is returned for combinations of objects an operation has no
	// case for.
	ErrUnsupported = errors.New("unsupported combination of objects")
)

// fail logs a domain failure and wraps kind with a description of the
// operation.
func fail(kind error, op string, format string, args ...any) error {
	err := errors.Wrap(kind, op+": "+fmt.Sprintf(format, args...))
	Logger().Debug("euclid: operation failed", "op", op, "err", err)
	return err
}
