package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_SetValid(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "localhost:8080", addr.String())
}

func TestNetAddress_SetIPHost(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("127.0.0.1:9000"))
	assert.Equal(t, "127.0.0.1:9000", addr.String())
}

func TestNetAddress_SetInvalid(t *testing.T) {
	tests := []string{
		"no-port",
		"localhost:abc",
		"localhost:0",
		"not-an-ip:8080",
	}

	for _, input := range tests {
		var addr NetAddress
		assert.Error(t, addr.Set(input), "input %q should fail", input)
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
