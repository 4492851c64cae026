package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark attaches markErr to err. Marking with a kinded sentinel attaches its
// kind as well.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	if ke, ok := markErr.(*kindError); ok {
		err = cr.Mark(err, ke.kind)
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference, including marks attached with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// kindError matches itself by identity and its kind through Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind builds a sentinel that also matches the given kind. Two sentinels of
// the same kind never match each other.
func NewKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
