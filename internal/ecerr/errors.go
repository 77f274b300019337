// Package ecerr defines the structured error taxonomy the resolver
// surfaces to callers: I/O and argument failures only. Pattern and INI
// syntax errors are recovered silently inside internal/glob and
// internal/ini and never reach this package.
package ecerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ResolveError wraps a failure encountered while resolving a target
// path, carrying the offending path and the operation that failed.
type ResolveError struct {
	Path string
	Op   string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Wrap builds a ResolveError around err, attaching a stack trace via
// github.com/pkg/errors so --debug output can print where the failure
// originated.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &ResolveError{Path: path, Op: op, Err: errors.WithStack(err)}
}

// Wrapf is Wrap with a formatted underlying message.
func Wrapf(op, path string, format string, args ...interface{}) error {
	return &ResolveError{Path: path, Op: op, Err: errors.WithStack(fmt.Errorf(format, args...))}
}

// StackTrace extracts the stack trace recorded by Wrap/Wrapf, if any,
// for --debug diagnostics.
func StackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}
	var re *ResolveError
	if errors.As(err, &re) {
		if st, ok := re.Err.(stackTracer); ok {
			return st.StackTrace()
		}
	}
	return nil
}
