package gai

import (
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

func TestFromMsg(t *testing.T) {
	msg := new(dns.Msg)
	msg.SetQuestion("www.example.com.", dns.TypeA)
	msg.Answer = []dns.RR{
		// CNAME records don't match the question type and are skipped
		&dns.CNAME{
			Hdr:    dns.RR_Header{Name: "www.example.com.", Rrtype: dns.TypeCNAME, Class: dns.ClassINET, Ttl: 3600},
			Target: "host.example.com.",
		},
		&dns.A{
			Hdr: dns.RR_Header{Name: "host.example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 3600},
			A:   net.ParseIP("192.0.2.1"),
		},
		// Wrong class, skipped
		&dns.A{
			Hdr: dns.RR_Header{Name: "host.example.com.", Rrtype: dns.TypeA, Class: dns.ClassCHAOS, Ttl: 3600},
			A:   net.ParseIP("192.0.2.2"),
		},
		&dns.A{
			Hdr: dns.RR_Header{Name: "host.example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 3600},
			A:   net.ParseIP("192.0.2.3"),
		},
	}

	q := NewQuery("www.example.com", "", &Hints{SockType: SockStream, Flags: CanonName}, nil)
	require.NoError(t, q.fromMsg(msg))
	require.Len(t, q.list, 2)
	// The request-level canonical name comes from the question
	require.Equal(t, "www.example.com", q.canon)
	// Per-entry canonical names come from the record owner with CanonName
	for _, ai := range q.list {
		require.Equal(t, INET, ai.Family)
		require.Equal(t, "host.example.com", ai.CanonName)
	}
	require.Equal(t, net.ParseIP("192.0.2.1").To4(), q.list[0].Addr)
	require.Equal(t, net.ParseIP("192.0.2.3").To4(), q.list[1].Addr)
}

func TestFromMsgFQDN(t *testing.T) {
	msg := new(dns.Msg)
	msg.SetQuestion("www.example.com.", dns.TypeA)
	msg.Answer = []dns.RR{
		&dns.A{
			Hdr: dns.RR_Header{Name: "host.example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 3600},
			A:   net.ParseIP("192.0.2.1"),
		},
	}

	q := NewQuery("www", "", &Hints{SockType: SockStream, Flags: FQDN}, nil)
	require.NoError(t, q.fromMsg(msg))
	require.Len(t, q.list, 1)
	require.Equal(t, "www.example.com", q.list[0].CanonName)
}

func TestFromMsgNoName(t *testing.T) {
	msg := new(dns.Msg)
	msg.SetQuestion("www.example.com.", dns.TypeA)
	msg.Answer = []dns.RR{
		&dns.A{
			Hdr: dns.RR_Header{Name: "www.example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 3600},
			A:   net.ParseIP("192.0.2.1"),
		},
	}

	q := NewQuery("www.example.com", "", &Hints{SockType: SockStream}, nil)
	require.NoError(t, q.fromMsg(msg))
	require.Len(t, q.list, 1)
	require.Empty(t, q.list[0].CanonName)
}

func TestFromMsgAAAA(t *testing.T) {
	msg := new(dns.Msg)
	msg.SetQuestion("www.example.com.", dns.TypeAAAA)
	msg.Answer = []dns.RR{
		&dns.AAAA{
			Hdr:  dns.RR_Header{Name: "www.example.com.", Rrtype: dns.TypeAAAA, Class: dns.ClassINET, Ttl: 3600},
			AAAA: net.ParseIP("2001:db8::1"),
		},
	}

	q := NewQuery("www.example.com", "", &Hints{SockType: SockStream}, nil)
	require.NoError(t, q.fromMsg(msg))
	require.Len(t, q.list, 1)
	require.Equal(t, INET6, q.list[0].Family)
	require.Equal(t, net.ParseIP("2001:db8::1").To16(), q.list[0].Addr)
}

func TestFromMsgNoQuestion(t *testing.T) {
	q := NewQuery("www.example.com", "", nil, nil)
	require.Error(t, q.fromMsg(new(dns.Msg)))
}
