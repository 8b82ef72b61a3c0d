package errors

import "fmt"

// Kind classifies failures on the request path.
type Kind int

const (
	MalformedRequest Kind = iota
	EmptyRequest
	NotFound
	IOFailure
)

func (k Kind) Error() string {
	switch k {
	case MalformedRequest:
		return "malformed request"
	case EmptyRequest:
		return "empty request"
	case NotFound:
		return "not found"
	case IOFailure:
		return "i/o failure"
	default:
		return fmt.Sprintf("unknown error kind: %d", int(k))
	}
}

// Error pairs a Kind with the error that caused it.
type Error struct {
	Kind       Kind
	underlying error
}

func (e *Error) Error() string {
	if e.underlying != nil {
		return fmt.Sprintf("%s: %v", e.Kind.Error(), e.underlying)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.underlying
}

// Is reports whether target is the same Kind, so errors.Is(err, NotFound) works
// through any amount of wrapping.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func New(kind Kind, underlying error) *Error {
	return &Error{Kind: kind, underlying: underlying}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, underlying: fmt.Errorf(format, args...)}
}
