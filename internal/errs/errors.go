package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Every kind is fatal to a generation run.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindDataIntegrity   Kind = "data_integrity"
	KindIO              Kind = "io_error"
)

// Sentinels for errors.Is checks.
var (
	ErrInvalidArgument = errors.New(string(KindInvalidArgument))
	ErrDataIntegrity   = errors.New(string(KindDataIntegrity))
	ErrIO              = errors.New(string(KindIO))
)

// Error carries the kind, the failing operation and the underlying cause.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the same kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrDataIntegrity:
		return e.Kind == KindDataIntegrity
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

func InvalidArgument(op string, format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

func DataIntegrity(op string, format string, args ...any) error {
	return &Error{Kind: KindDataIntegrity, Op: op, Message: fmt.Sprintf(format, args...)}
}

// IO wraps a filesystem or store failure.
func IO(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// Wrap attaches a kind to an existing error.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
