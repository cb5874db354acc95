package rpcserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	codec := jsonCodec{}

	req := &QueryRequest{K: 2, G: 3}
	data, err := codec.Marshal(req)
	require.NoError(t, err)

	var out QueryRequest
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, *req, out)
}

func TestJSONCodec_Name(t *testing.T) {
	assert.Equal(t, "json", jsonCodec{}.Name())
}
