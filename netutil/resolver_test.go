package netutil

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIPv4Literal(t *testing.T) {
	ip, err := ResolveIPv4("127.0.0.1")
	require.Nil(t, err)
	assert.Equal(t, "127.0.0.1", ip)
}

func TestResolveIPv4RejectsIPv6Literal(t *testing.T) {
	_, err := ResolveIPv4("::1")
	assert.NotNil(t, err)
}

func TestResolveIPv4UnresolvableHost(t *testing.T) {
	_, err := ResolveIPv4("host.invalid")
	assert.NotNil(t, err)
}

func TestResolveIPv4Localhost(t *testing.T) {
	ip, err := ResolveIPv4("localhost")
	require.Nil(t, err)

	parsed := net.ParseIP(ip)
	require.NotNil(t, parsed)
	assert.NotNil(t, parsed.To4())
}

func TestReverseLookupRejectsNonIP(t *testing.T) {
	_, err := ReverseLookup("not-an-ip")
	assert.NotNil(t, err)

	_, err = ReverseLookup("256.1.1.1")
	assert.NotNil(t, err)
}

func TestLocalIPIsParseable(t *testing.T) {
	ip := LocalIP()
	assert.NotNil(t, net.ParseIP(ip))
}

func TestHostnameIsNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, Hostname())
}
