package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netscan-dev/netscan/scan"
)

func TestGetPortsSelections(t *testing.T) {
	cases := map[string][]int{
		"22":              {22},
		"22,80":           {22, 80},
		" 22 , 80 ":       {22, 80},
		"8000-8002":       {8000, 8001, 8002},
		"22,80,8000-8002": {22, 80, 8000, 8001, 8002},
	}

	for selection, expected := range cases {
		ports, err := getPorts(selection)
		require.Nil(t, err, "selection '%s'", selection)
		assert.Equal(t, expected, ports, "selection '%s'", selection)
	}
}

func TestGetPortsDefault(t *testing.T) {
	ports, err := getPorts("")
	require.Nil(t, err)
	assert.Equal(t, scan.DefaultPorts, ports)
}

func TestGetPortsInvalidSelections(t *testing.T) {
	for _, selection := range []string{
		"abc",
		"10-1",
		"1-",
		"-5",
		"1-2-3",
		"22,",
	} {
		_, err := getPorts(selection)
		assert.NotNil(t, err, "selection '%s' should be rejected", selection)
	}
}
