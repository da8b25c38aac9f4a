package gai

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFile(t *testing.T) {
	table := strings.Join([]string{
		"# comment line",
		"",
		"malformed",
		"192.0.2.1 otherhost",
		"192.0.2.2 MyHost alias",
		"not-an-address myhost",
		"2001:db8::1 myhost",
		"192.0.2.3 alias myhost.",
	}, "\n")

	q := NewQuery("myhost", "", &Hints{SockType: SockStream}, nil)
	q.fromFile(INET, strings.NewReader(table))
	require.Len(t, q.list, 2)
	require.Equal(t, net.ParseIP("192.0.2.2").To4(), q.list[0].Addr)
	require.Equal(t, net.ParseIP("192.0.2.3").To4(), q.list[1].Addr)
	for _, ai := range q.list {
		require.Empty(t, ai.CanonName)
	}

	// The IPv6 line is only picked up for an INET6 scan
	q = NewQuery("myhost", "", &Hints{SockType: SockStream}, nil)
	q.fromFile(INET6, strings.NewReader(table))
	require.Len(t, q.list, 1)
	require.Equal(t, net.ParseIP("2001:db8::1").To16(), q.list[0].Addr)
}

func TestFromFileCanonName(t *testing.T) {
	table := "192.0.2.1 canonical.example.com myhost\n"

	q := NewQuery("myhost", "", &Hints{SockType: SockStream, Flags: CanonName}, nil)
	q.fromFile(INET, strings.NewReader(table))
	require.Len(t, q.list, 1)
	require.Equal(t, "canonical.example.com", q.list[0].CanonName)

	// The FQDN flag prefers an already-learned name
	q = NewQuery("myhost", "", &Hints{SockType: SockStream, Flags: FQDN}, nil)
	q.canon = "myhost.example.com"
	q.fromFile(INET, strings.NewReader(table))
	require.Len(t, q.list, 1)
	require.Equal(t, "myhost.example.com", q.list[0].CanonName)
}
