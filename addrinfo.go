package gai

import (
	"net"
	"strconv"
	"strings"
)

// AddrInfo is one resolved socket address. Entries are never modified after
// being appended to a result, and a successful lookup hands the whole list
// to the caller.
type AddrInfo struct {
	Family    Family
	SockType  SockType
	Protocol  Protocol
	Addr      net.IP // 4 bytes for INET, 16 bytes for INET6
	Port      int
	CanonName string
}

// String formats the entry address as host:port.
func (ai *AddrInfo) String() string {
	return net.JoinHostPort(ai.Addr.String(), strconv.Itoa(ai.Port))
}

type match struct {
	family   Family
	socktype SockType
	protocol Protocol
}

// One discovered address expands into an entry for every triple here that
// is compatible with the hints.
var matches = []match{
	{INET, SockDgram, ProtoUDP},
	{INET, SockStream, ProtoTCP},
	{INET, SockRaw, ProtoAny},
	{INET6, SockDgram, ProtoUDP},
	{INET6, SockStream, ProtoTCP},
	{INET6, SockRaw, ProtoAny},
}

func matchFamily(f Family, m match) bool {
	return f == m.family || f == Unspec
}

func matchProto(p Protocol, m match) bool {
	return p == m.protocol || p == ProtoAny || m.protocol == ProtoAny
}

// Raw sockets are never matched unless explicitly asked for.
func matchSockType(s SockType, m match) bool {
	return s == m.socktype || (s == SockAny && m.socktype != SockRaw)
}

// addEntry extends the result list with one entry per compatible triple for
// the discovered address. The canonical name is only attached when the
// caller asked for one.
func (q *Query) addEntry(ip net.IP, family Family, cname string) {
	for _, m := range matches {
		if m.family != family ||
			!matchSockType(q.hints.SockType, m) ||
			!matchProto(q.hints.Protocol, m) {
			continue
		}

		proto := q.hints.Protocol
		if proto == ProtoAny {
			proto = m.protocol
		}

		var port int
		switch proto {
		case ProtoTCP:
			port = q.portTCP
		case ProtoUDP:
			port = q.portUDP
		}
		// A service was given but isn't defined for this protocol
		if port == portNotFound {
			continue
		}

		ai := &AddrInfo{
			Family:   family,
			SockType: m.socktype,
			Protocol: proto,
			Addr:     ip,
			Port:     port,
		}
		if cname != "" && q.hints.Flags&(CanonName|FQDN) != 0 {
			ai.CanonName = cname
		}
		q.list = append(q.list, ai)
		varEntries.Add(1)
	}
}

// sockaddrFromString parses an address literal in the given family. The
// returned address is family-sized.
func sockaddrFromString(family Family, s string) (net.IP, bool) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, false
	}
	switch family {
	case INET:
		if strings.Contains(s, ":") {
			return nil, false
		}
		if ip4 := ip.To4(); ip4 != nil {
			return ip4, true
		}
	case INET6:
		if strings.Contains(s, ":") {
			return ip.To16(), true
		}
	}
	return nil, false
}
