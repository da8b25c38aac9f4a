package gai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPort(t *testing.T) {
	db := StaticServiceDB{
		"http/tcp":   80,
		"syslog/udp": 514,
	}
	tests := []struct {
		service     string
		proto       string
		numericOnly bool
		want        int
	}{
		{"", "tcp", false, 0},
		{"80", "tcp", false, 80},
		{"0", "tcp", false, 0},
		{"65535", "tcp", false, 65535},
		{"65536", "tcp", false, portInvalid},
		{"-1", "tcp", false, portInvalid},
		{"99999999999999999999", "tcp", false, portInvalid},
		{"http", "tcp", false, 80},
		{"http", "udp", false, portNotFound},
		{"syslog", "udp", false, 514},
		{"unknown", "tcp", false, portNotFound},
		{"http", "tcp", true, portInvalid},
		{"80", "tcp", true, 80},
	}
	for _, test := range tests {
		got := getPort(db, test.service, test.proto, test.numericOnly)
		require.Equal(t, test.want, got, "service: %q proto: %s", test.service, test.proto)
	}
}
