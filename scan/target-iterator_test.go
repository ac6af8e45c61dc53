package scan

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIDRIteration(t *testing.T) {
	ti := NewTargetIterator("192.168.1.1/24")

	ip, err := ti.Peek()
	require.Nil(t, err)

	assert.Equal(t, ip.String(), "192.168.1.0")

	for i := 0; i < 256; i++ {

		ip, err := ti.Peek()
		require.Nil(t, err)
		assert.Equal(t, ip.String(), fmt.Sprintf("192.168.1.%d", i))

		ip, err = ti.Next()
		require.Nil(t, err)
		assert.Equal(t, ip.String(), fmt.Sprintf("192.168.1.%d", i))
	}

	_, err = ti.Next()
	assert.Equal(t, io.EOF, err)
}

func TestSingleAddressIteration(t *testing.T) {
	ti := NewTargetIterator("192.168.1.50")

	ip, err := ti.Next()
	require.Nil(t, err)
	assert.Equal(t, "192.168.1.50", ip.String())

	_, err = ti.Next()
	assert.Equal(t, io.EOF, err)
}

func TestSweepIterationSkipsNetworkAndBroadcast(t *testing.T) {
	ti, err := NewSweepIterator("10.1.2.0/24")
	require.Nil(t, err)

	var ips []string
	for {
		ip, err := ti.Next()
		if err == io.EOF {
			break
		}
		require.Nil(t, err)
		ips = append(ips, ip.String())
	}

	require.Len(t, ips, 254)
	assert.Equal(t, "10.1.2.1", ips[0])
	assert.Equal(t, "10.1.2.254", ips[253])
	assert.NotContains(t, ips, "10.1.2.0")
	assert.NotContains(t, ips, "10.1.2.255")
}

func TestSweepIterationAcceptsBarePrefix(t *testing.T) {
	ti, err := NewSweepIterator("10.1.2")
	require.Nil(t, err)

	count := 0
	first, err := ti.Peek()
	require.Nil(t, err)
	assert.Equal(t, "10.1.2.1", first.String())

	for {
		_, err := ti.Next()
		if err == io.EOF {
			break
		}
		require.Nil(t, err)
		count++
	}

	assert.Equal(t, 254, count)
}

func TestSweepIterationRejectsInvalidPrefixes(t *testing.T) {
	for _, prefix := range []string{"nonsense", "10.1.2.3", "10.1", ""} {
		_, err := NewSweepIterator(prefix)
		assert.NotNil(t, err, "prefix '%s' should be rejected", prefix)
	}
}
