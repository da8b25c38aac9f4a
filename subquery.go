package gai

import (
	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// SubQuery is one DNS lookup in flight. It is owned by exactly one Query
// which advances it by calling Resume until done is reported.
type SubQuery interface {
	// Resume checks on the lookup without blocking. Once done, resp holds
	// the decoded response; a nil resp with a nil error means nothing was
	// found. A non-nil error is a transport-level failure.
	Resume() (resp *dns.Msg, done bool, err error)

	// Ready is closed once Resume will report completion.
	Ready() <-chan struct{}

	// Close releases the sub-query. Any response not yet collected is
	// discarded.
	Close() error
}

// Querier issues DNS sub-queries. Retry, caching and truncation policy all
// live behind this interface, not in the resolver itself.
type Querier interface {
	// Query starts a lookup for name with the given record type. search
	// selects search-list semantics; it is off when re-querying a name
	// already known to be fully qualified.
	Query(name string, qtype uint16, search bool) (SubQuery, error)
}

// DNSQuerier issues queries to a plain DNS server over UDP or TCP, one
// connection per query.
type DNSQuerier struct {
	endpoint string
	client   *dns.Client
}

var _ Querier = &DNSQuerier{}

// NewDNSQuerier returns a Querier sending queries to the given endpoint.
// net can be "udp" or "tcp".
func NewDNSQuerier(endpoint, net string) *DNSQuerier {
	return &DNSQuerier{
		endpoint: endpoint,
		client:   &dns.Client{Net: net},
	}
}

// Query starts a single lookup. The exchange runs on its own goroutine so
// Resume never blocks; completion is published through the ready channel.
func (d *DNSQuerier) Query(name string, qtype uint16, search bool) (SubQuery, error) {
	q := new(dns.Msg)
	q.SetQuestion(dns.Fqdn(name), qtype)
	sq := &dnsSubQuery{ready: make(chan struct{})}
	go func() {
		r, _, err := d.client.Exchange(q, d.endpoint)
		sq.resp = r
		if err != nil {
			sq.err = errors.Wrapf(err, "exchange with %s failed", d.endpoint)
		}
		close(sq.ready)
	}()
	return sq, nil
}

type dnsSubQuery struct {
	ready chan struct{}
	resp  *dns.Msg
	err   error
}

func (s *dnsSubQuery) Resume() (*dns.Msg, bool, error) {
	select {
	case <-s.ready:
	default:
		return nil, false, nil
	}
	if s.err != nil {
		return nil, true, s.err
	}
	if s.resp == nil || s.resp.Rcode != dns.RcodeSuccess {
		return nil, true, nil
	}
	return s.resp, true, nil
}

func (s *dnsSubQuery) Ready() <-chan struct{} {
	return s.ready
}

func (s *dnsSubQuery) Close() error {
	return nil
}
