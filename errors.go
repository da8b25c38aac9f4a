package gai

import (
	"errors"
	"fmt"
)

// Kind classifies a terminal resolution failure.
type Kind int

const (
	NoError Kind = iota

	// Malformed hints: unknown flag bits, conflicting flags, unsupported
	// socket type, raw socket combined with a service name, or no possible
	// family/socktype/protocol combination.
	InvalidArgument

	// The service name could not be resolved to a port under the requested
	// protocol constraints.
	ServiceNotFound

	// The hinted address family is not one of unspec, inet or inet6.
	FamilyNotSupported

	// No source produced an address.
	NoData

	// No source produced an address, but the lookup was marked retryable.
	Again

	// NumericHost was set and the hostname is not an address literal for
	// any requested family.
	NotNumeric

	// A collaborator reported an allocation failure.
	OutOfMemory

	// A sub-query could not be issued, or its response was malformed.
	ProtocolFailure

	// The resolver reached a state it does not recognize.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case NoError:
		return "no error"
	case InvalidArgument:
		return "invalid argument"
	case ServiceNotFound:
		return "service not found"
	case FamilyNotSupported:
		return "address family not supported"
	case NoData:
		return "no data"
	case Again:
		return "try again"
	case NotNumeric:
		return "not a numeric address"
	case OutOfMemory:
		return "out of memory"
	case ProtocolFailure:
		return "protocol failure"
	case Unsupported:
		return "unsupported"
	}
	return fmt.Sprintf("unknown error %d", int(k))
}

// Error is a resolution failure as reported to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the failure kind of a resolution error. It returns NoError
// for nil and Unsupported for errors that didn't come out of a lookup.
func KindOf(err error) Kind {
	if err == nil {
		return NoError
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unsupported
}
