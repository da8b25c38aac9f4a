package gai

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddrInfoExpansion(t *testing.T) {
	cfg := &Config{Sources: []Source{SourceHosts}, HostsFile: "/does/not/exist"}
	tests := []struct {
		name  string
		host  string
		hints Hints
		want  []struct {
			socktype SockType
			protocol Protocol
		}
	}{
		{"wildcard hints", "127.0.0.1", Hints{}, []struct {
			socktype SockType
			protocol Protocol
		}{{SockDgram, ProtoUDP}, {SockStream, ProtoTCP}}},
		{"raw only when asked", "127.0.0.1", Hints{SockType: SockRaw}, []struct {
			socktype SockType
			protocol Protocol
		}{{SockRaw, ProtoAny}}},
		{"protocol pinned", "127.0.0.1", Hints{Protocol: ProtoUDP}, []struct {
			socktype SockType
			protocol Protocol
		}{{SockDgram, ProtoUDP}}},
		{"inet6 literal", "2001:db8::1", Hints{}, []struct {
			socktype SockType
			protocol Protocol
		}{{SockDgram, ProtoUDP}, {SockStream, ProtoTCP}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			addrs, err := GetAddrInfo(context.Background(), test.host, "", &test.hints, cfg)
			require.NoError(t, err)
			require.Len(t, addrs, len(test.want))
			for i, ai := range addrs {
				require.Equal(t, test.want[i].socktype, ai.SockType)
				require.Equal(t, test.want[i].protocol, ai.Protocol)
			}
		})
	}
}

func TestSockaddrFromString(t *testing.T) {
	tests := []struct {
		family Family
		in     string
		ok     bool
		size   int
	}{
		{INET, "192.0.2.1", true, net.IPv4len},
		{INET, "::1", false, 0},
		{INET, "not-an-address", false, 0},
		{INET6, "2001:db8::1", true, net.IPv6len},
		{INET6, "::ffff:192.0.2.1", true, net.IPv6len},
		{INET6, "192.0.2.1", false, 0},
		{Unspec, "192.0.2.1", false, 0},
	}
	for _, test := range tests {
		ip, ok := sockaddrFromString(test.family, test.in)
		require.Equal(t, test.ok, ok, "addr: %s family: %s", test.in, test.family)
		if ok {
			require.Len(t, ip, test.size, "addr: %s", test.in)
		}
	}
}
