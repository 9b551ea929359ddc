package dom

import "github.com/pkg/errors"

// Error kinds returned by the tree. Every error the package returns wraps
// exactly one of these, so callers classify with errors.Is or errors.Cause.
var (
	// ErrInvalidArgument reports malformed input such as an empty tag or a
	// nil node.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation reports a structural precondition violation.
	ErrInvalidOperation = errors.New("invalid operation")
)

func invalidArgument(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func invalidOperation(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidOperation, format, args...)
}
