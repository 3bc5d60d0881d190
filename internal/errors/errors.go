// Package errors is the single error import for the console: stdlib tree
// inspection plus pkg/errors stack annotation.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// AsType is As returning the typed target.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// IsAny reports whether err matches one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Origin returns "file:line" of the innermost annotated frame in err, or ""
// when nothing in the chain carries a stack. The error page log uses it to
// point at where a 5xx started.
func Origin(err error) string {
	var origin string
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if tracer, ok := e.(stackTracer); ok {
			if frames := tracer.StackTrace(); len(frames) > 0 {
				origin = fmt.Sprintf("%s:%d", frames[0], frames[0])
			}
		}
	}

	return origin
}
