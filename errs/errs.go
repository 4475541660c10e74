// Package errs 定义文本画布各阶段共用的错误分类。
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidArgument indicates a value of the wrong type (text, resolution).
	KindInvalidArgument
	// KindInvalidRange indicates a value outside its allowed range (empty text, resolution <= 0).
	KindInvalidRange
	// KindInvalidConfiguration indicates a malformed style record.
	KindInvalidConfiguration
	// KindMeasurementFailure indicates the measurement capability misbehaved.
	KindMeasurementFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidRange:
		return "invalid range"
	case KindInvalidConfiguration:
		return "invalid configuration"
	case KindMeasurementFailure:
		return "measurement failure"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; every *Error matches the sentinel of its Kind.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidRange         = errors.New("invalid range")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrMeasurementFailure   = errors.New("measurement failure")
)

// Error 是带有操作名、分类与字段上下文的结构化错误。
type Error struct {
	// Op is the operation that failed (e.g., "textcanvas.SetText").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Field names the offending field, if any (e.g., "fontSize").
	Field string
	// Msg is a short human-readable description.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("%s [%s] %s: %s", e.Op, e.Kind, e.Field, msg)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching e.Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindInvalidRange:
		return ErrInvalidRange
	case KindInvalidConfiguration:
		return ErrInvalidConfiguration
	case KindMeasurementFailure:
		return ErrMeasurementFailure
	default:
		return nil
	}
}

// New builds an *Error with a formatted message.
func New(op string, kind Kind, field, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error around cause.
func Wrap(op string, kind Kind, field string, cause error) *Error {
	return &Error{Op: op, Kind: kind, Field: field, Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
