package gai

import (
	"errors"
	"net"
	"strconv"
)

// Negative port results are markers rather than ports: the service name
// isn't defined for the protocol, or it can't be a port at all.
const (
	portNotFound = -1
	portInvalid  = -2
)

// ServiceDB resolves service names to port numbers for a protocol
// ("tcp" or "udp").
type ServiceDB interface {
	LookupPort(service, proto string) (int, bool)
}

// StaticServiceDB is a fixed in-memory service table keyed by
// "service/proto", e.g. "http/tcp".
type StaticServiceDB map[string]int

var _ ServiceDB = StaticServiceDB{}

func (db StaticServiceDB) LookupPort(service, proto string) (int, bool) {
	port, ok := db[service+"/"+proto]
	return port, ok
}

// systemServiceDB consults the system services database.
type systemServiceDB struct{}

func (systemServiceDB) LookupPort(service, proto string) (int, bool) {
	port, err := net.LookupPort(proto, service)
	if err != nil {
		return 0, false
	}
	return port, true
}

// getPort resolves a service name for one protocol. Numeric names are used
// directly, out-of-range numbers are invalid rather than unknown.
func getPort(db ServiceDB, service, proto string, numericOnly bool) int {
	if service == "" {
		return 0
	}
	n, err := strconv.Atoi(service)
	if err == nil {
		if n < 0 || n > 65535 {
			return portInvalid
		}
		return n
	}
	if errors.Is(err, strconv.ErrRange) {
		return portInvalid
	}
	if numericOnly {
		return portInvalid
	}
	port, ok := db.LookupPort(service, proto)
	if !ok {
		return portNotFound
	}
	return port
}
