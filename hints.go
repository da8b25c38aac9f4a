package gai

// Family is the address family of a lookup or of a resolved address.
type Family int

const (
	Unspec Family = iota
	INET
	INET6
)

func (f Family) String() string {
	switch f {
	case Unspec:
		return "unspec"
	case INET:
		return "inet"
	case INET6:
		return "inet6"
	}
	return "unknown"
}

// SockType narrows results to one socket type. The zero value matches any
// type except raw sockets.
type SockType int

const (
	SockAny SockType = iota
	SockStream
	SockDgram
	SockRaw
)

func (s SockType) String() string {
	switch s {
	case SockAny:
		return "any"
	case SockStream:
		return "stream"
	case SockDgram:
		return "dgram"
	case SockRaw:
		return "raw"
	}
	return "unknown"
}

// Protocol narrows results to one transport protocol. The zero value
// matches any protocol.
type Protocol int

const (
	ProtoAny Protocol = iota
	ProtoTCP
	ProtoUDP
)

func (p Protocol) String() string {
	switch p {
	case ProtoAny:
		return "any"
	case ProtoTCP:
		return "tcp"
	case ProtoUDP:
		return "udp"
	}
	return "unknown"
}

// Flags modify lookup behavior.
type Flags uint

const (
	// Return the wildcard address instead of loopback when no hostname is given.
	Passive Flags = 1 << iota
	// Attach the canonical name of the host to every result entry.
	CanonName
	// The hostname must be a numeric address literal, no lookups are performed.
	NumericHost
	// The service must be a numeric port, no service name lookup is performed.
	NumericService
	// Attach the fully-qualified query name to every result entry. Mutually
	// exclusive with CanonName.
	FQDN
	// Report Again instead of NoData when no source produced an address.
	Retryable
)

const flagMask = Passive | CanonName | NumericHost | NumericService | FQDN | Retryable

// Hints narrow the set of addresses a query produces. The zero value places
// no constraints other than excluding raw sockets.
type Hints struct {
	Family   Family
	SockType SockType
	Protocol Protocol
	Flags    Flags
}
