// Package failure classifies the errors the report stream can produce so that
// callers can tell retryable transport problems apart from permanent data errors.
package failure

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind names the stage of the pipeline an error came from.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindAuth
	KindTransport
	KindDecode
	KindBuild
	KindComposite
	KindSink
)

// String returns the label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAuth:
		return "auth"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindBuild:
		return "build"
	case KindComposite:
		return "composite"
	case KindSink:
		return "sink"
	default:
		return "unknown"
	}
}

// Class represents how an error should be handled.
type Class int

const (
	// Transient errors may succeed if the operation is attempted again.
	Transient Class = iota
	// Permanent errors affect a single event; processing continues with the next one.
	Permanent
	// Fatal errors stop the session.
	Fatal
)

// String returns the string representation of Class
func (c Class) String() string {
	switch c {
	case Transient:
		return "transient"
	case Permanent:
		return "permanent"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Error wraps an error with its kind, class and the operation that failed.
type Error struct {
	Kind  Kind
	Class Class
	Op    string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failure in %s", e.Class, e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err. A nil err yields nil so callers can wrap unconditionally.
func New(kind Kind, class Class, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Class: class, Op: op, Err: err}
}

// KindOf reports the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Class == Transient
	}
	return false
}

// IsFatal reports whether err must end the session.
func IsFatal(err error) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Class == Fatal
	}
	return false
}

// FromGRPC classifies a stream or unary call error by its gRPC status code.
func FromGRPC(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return New(KindTransport, Fatal, op, err)
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.ResourceExhausted, codes.Aborted,
		codes.DeadlineExceeded, codes.Internal, codes.Unknown:
		return New(KindTransport, Transient, op, err)
	default:
		return New(KindTransport, Fatal, op, err)
	}
}
