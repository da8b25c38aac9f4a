package gai

import (
	"context"
	"os"

	"github.com/miekg/dns"
)

type state int

const (
	stateInit state = iota
	stateNextSource
	stateSameSource
	stateNextFamily
	stateSubQuery
	stateNotFound
	stateHalt
)

func (s state) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateNextSource:
		return "next-source"
	case stateSameSource:
		return "same-source"
	case stateNextFamily:
		return "next-family"
	case stateSubQuery:
		return "sub-query"
	case stateNotFound:
		return "not-found"
	case stateHalt:
		return "halt"
	}
	return "invalid"
}

// Result is the terminal outcome of a query. Addrs is only populated on
// success and belongs to the caller from then on.
type Result struct {
	Addrs []*AddrInfo
	Err   error
}

// Query is one hostname/service resolution in flight. It is advanced by
// Resume and must not be shared between goroutines; a single in-flight
// query only ever has one writer.
type Query struct {
	hostname string
	service  string
	hints    Hints
	cfg      *Config

	state     state
	err       *Error
	portTCP   int
	portUDP   int
	canon     string // fully-qualified name learned from the first matching answer
	list      []*AddrInfo
	srcIdx    int
	familyIdx int
	subq      SubQuery
	result    *Result
}

// NewQuery builds a query for a hostname and/or a service name, either of
// which may be empty but not both. nil hints matches any family with no
// other constraints. nil cfg uses the defaults.
func NewQuery(hostname, service string, hints *Hints, cfg *Config) *Query {
	q := &Query{
		hostname: hostname,
		service:  service,
		cfg:      cfg,
		srcIdx:   -1,
	}
	if hints != nil {
		q.hints = *hints
	}
	if cfg == nil {
		q.cfg = &Config{}
	}
	varQueries.Add(1)
	return q
}

// Resume advances the resolution until it either completes or has to wait
// for the in-flight DNS sub-query. It returns (nil, false) while pending;
// the caller resumes again once the sub-query has made progress. Once done
// it keeps returning the same result.
func (q *Query) Resume() (*Result, bool) {
	if q.result != nil {
		return q.result, true
	}
	for {
		switch q.state {
		case stateInit:
			q.init()
		case stateNextSource:
			if source, ok := q.nextSource(); ok {
				q.familyIdx = 0
				q.state = stateSameSource
				q.logger().WithField("source", source).Debug("trying source")
			} else {
				q.state = stateNotFound
			}
		case stateSameSource:
			q.sameSource()
		case stateNextFamily:
			q.nextFamily()
		case stateSubQuery:
			if q.resumeSubQuery() {
				return nil, false
			}
		case stateNotFound:
			if q.hints.Flags&Retryable != 0 {
				q.fail(Again, "no address found for %q", q.hostname)
			} else {
				q.fail(NoData, "no address found for %q", q.hostname)
			}
		case stateHalt:
			return q.halt(), true
		default:
			q.fail(Unsupported, "invalid resolver state %d", int(q.state))
		}
	}
}

// Close releases the query and its in-flight sub-query, if any. The query
// must not be resumed afterwards.
func (q *Query) Close() error {
	if q.subq == nil {
		return nil
	}
	err := q.subq.Close()
	q.subq = nil
	return err
}

// GetAddrInfo resolves a hostname/service pair synchronously, waiting for
// the sub-query between resume steps. It's a convenience wrapper around
// NewQuery/Resume for callers that don't drive their own event loop.
func GetAddrInfo(ctx context.Context, hostname, service string, hints *Hints, cfg *Config) ([]*AddrInfo, error) {
	q := NewQuery(hostname, service, hints, cfg)
	defer q.Close()
	for {
		res, done := q.Resume()
		if done {
			return res.Addrs, res.Err
		}
		select {
		case <-q.subq.Ready():
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (q *Query) fail(kind Kind, format string, args ...interface{}) {
	q.err = newError(kind, format, args...)
	q.state = stateHalt
}

func (q *Query) halt() *Result {
	if q.err != nil {
		q.logger().WithError(q.err).Debug("lookup failed")
		varFailures.Add(q.err.Kind.String(), 1)
		q.result = &Result{Err: q.err}
	} else {
		list := q.list
		q.list = nil
		q.result = &Result{Addrs: list}
	}
	return q.result
}

// init validates the request once, resolves the service ports and handles
// the cases that don't need any source: empty hostname and numeric address
// literals.
func (q *Query) init() {
	if q.hostname == "" && q.service == "" {
		q.fail(InvalidArgument, "neither hostname nor service given")
		return
	}

	h := q.hints
	if h.Flags&^flagMask != 0 || (h.Flags&CanonName != 0 && h.Flags&FQDN != 0) {
		q.fail(InvalidArgument, "bad flags")
		return
	}
	switch h.Family {
	case Unspec, INET, INET6:
	default:
		q.fail(FamilyNotSupported, "family %d not supported", int(h.Family))
		return
	}
	switch h.SockType {
	case SockAny, SockStream, SockDgram, SockRaw:
	default:
		q.fail(InvalidArgument, "unknown socket type %d", int(h.SockType))
		return
	}
	if h.SockType == SockRaw && q.service != "" {
		q.fail(InvalidArgument, "service %q given for a raw socket", q.service)
		return
	}

	// At least one triple must remain possible under the hints
	var ok bool
	for _, m := range matches {
		if matchFamily(h.Family, m) && matchSockType(h.SockType, m) && matchProto(h.Protocol, m) {
			ok = true
			break
		}
	}
	if !ok {
		q.fail(InvalidArgument, "no matching family/socktype/protocol combination")
		return
	}

	numericOnly := h.Flags&NumericService != 0
	db := q.cfg.services()
	if h.Protocol == ProtoAny || h.Protocol == ProtoUDP {
		q.portUDP = getPort(db, q.service, "udp", numericOnly)
	}
	if h.Protocol == ProtoAny || h.Protocol == ProtoTCP {
		q.portTCP = getPort(db, q.service, "tcp", numericOnly)
	}
	if q.portTCP == portInvalid || q.portUDP == portInvalid ||
		(q.portTCP == portNotFound && q.portUDP == portNotFound) ||
		(h.Protocol != ProtoAny && (q.portTCP == portNotFound || q.portUDP == portNotFound)) {
		q.fail(ServiceNotFound, "service %q not found", q.service)
		return
	}

	// No hostname: synthesize the wildcard or loopback address for every
	// requested family.
	if q.hostname == "" {
		for family, ok := q.iterFamily(true); ok; family, ok = q.iterFamily(false) {
			var str string
			switch {
			case family == INET && h.Flags&Passive != 0:
				str = "0.0.0.0"
			case family == INET:
				str = "127.0.0.1"
			case h.Flags&Passive != 0:
				str = "::"
			default:
				str = "::1"
			}
			ip, _ := sockaddrFromString(family, str)
			q.addEntry(ip, family, "")
		}
		if len(q.list) == 0 {
			q.fail(NoData, "no local address")
			return
		}
		q.state = stateHalt
		return
	}

	// A numeric address literal skips all sources
	for family, ok := q.iterFamily(true); ok; family, ok = q.iterFamily(false) {
		ip, ok := sockaddrFromString(family, q.hostname)
		if !ok {
			continue
		}
		q.addEntry(ip, family, "")
		break
	}
	if len(q.list) > 0 {
		q.logger().Debug("numeric address")
		q.state = stateHalt
		return
	}
	if h.Flags&NumericHost != 0 {
		q.fail(NotNumeric, "host %q is not a numeric address", q.hostname)
		return
	}

	q.state = stateNextSource
}

// sameSource queries the current source for the current family. Sources
// whose backing store is unavailable simply report nothing.
func (q *Query) sameSource() {
	family := q.hints.Family
	if family == Unspec {
		family, _ = q.curFamily()
	}

	switch q.curSource() {
	case SourceDNS:
		if q.cfg.Querier == nil {
			q.state = stateNextSource
			return
		}
		name, search := q.hostname, true
		if q.canon != "" {
			// The canonical name is already known, skip the search list
			name, search = q.canon, false
		}
		qtype := dns.TypeA
		if family == INET6 {
			qtype = dns.TypeAAAA
		}
		subq, err := q.cfg.Querier.Query(name, qtype, search)
		if err != nil {
			q.fail(ProtocolFailure, "failed to issue sub-query: %v", err)
			return
		}
		q.subq = subq
		q.state = stateSubQuery

	case SourceHosts:
		f, err := os.Open(q.cfg.hostsFile())
		if err != nil {
			// A missing hosts file only disables this source
			q.state = stateNextSource
			return
		}
		q.fromFile(family, f)
		f.Close()
		q.state = stateNextFamily

	case SourceNIS:
		if q.cfg.YP == nil {
			q.state = stateNextSource
			return
		}
		mapname := "hosts.byname"
		if family == INET6 {
			mapname = "ipnodes.byname"
		}
		if line, err := q.cfg.YP.Match(mapname, q.hostname); err == nil {
			q.fromYP(family, line)
		}
		q.state = stateNextFamily

	default:
		q.state = stateNextSource
	}
}

// resumeSubQuery checks on the owned sub-query, reporting true while it is
// still pending. Transport failures count as "nothing found" for this
// family; only a malformed response is fatal.
func (q *Query) resumeSubQuery() (pending bool) {
	resp, done, err := q.subq.Resume()
	if !done {
		return true
	}
	q.subq = nil

	if err != nil {
		q.logger().WithError(err).Debug("sub-query failed")
		q.state = stateNextFamily
		return false
	}
	if resp == nil {
		q.state = stateNextFamily
		return false
	}
	if err := q.fromMsg(resp); err != nil {
		q.fail(ProtocolFailure, "bad response: %v", err)
		return false
	}
	q.state = stateNextFamily
	return false
}

// nextFamily decides whether to query the same source for another family,
// terminate with the addresses found so far, or move on to the next source.
// Iteration always stops at the first source that produced anything.
func (q *Query) nextFamily() {
	q.familyIdx++
	if q.hints.Family != Unspec || q.familyIdx >= len(q.cfg.families()) {
		// The family was pinned, or every family was tried with this source
		if len(q.list) > 0 {
			q.state = stateHalt
		} else {
			q.state = stateNextSource
		}
		return
	}
	q.state = stateSameSource
}
