package driverfetch

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

type Kind int

const (
	DetectionFailure Kind = iota + 1
	NetworkFailure
	ResolutionFailure
	IOFailure
	ConfigFailure
)

func (k Kind) String() string {
	switch k {
	case DetectionFailure:
		return "detection failure"
	case NetworkFailure:
		return "network failure"
	case ResolutionFailure:
		return "resolution failure"
	case IOFailure:
		return "io failure"
	case ConfigFailure:
		return "configuration failure"
	}
	return fmt.Sprintf("unknown failure (%d)", int(k))
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrDetection  = &Error{Kind: DetectionFailure}
	ErrNetwork    = &Error{Kind: NetworkFailure}
	ErrResolution = &Error{Kind: ResolutionFailure}
	ErrIO         = &Error{Kind: IOFailure}
	ErrConfig     = &Error{Kind: ConfigFailure}
)

type Error struct {
	Kind  Kind
	Doing string
	Err   error

	frame xerrors.Frame
}

func NewError(kind Kind, doing string, err error) *Error {
	return &Error{
		Kind:  kind,
		Doing: doing,
		Err:   err,
		frame: xerrors.Caller(1),
	}
}

func (e *Error) Error() string {
	return fmt.Sprint(e)
}

func (e *Error) Format(s fmt.State, v rune) {
	xerrors.FormatError(e, s, v)
}

func (e *Error) FormatError(p xerrors.Printer) error {
	if e.Doing == "" {
		p.Print(e.Kind.String())
	} else {
		p.Printf("%s %s", e.Kind, e.Doing)
	}
	e.frame.Format(p)
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Doing == "" && t.Err == nil
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Status)
}
