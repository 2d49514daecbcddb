package codecs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/cityhash/compress/codecs"
	"github.com/segmentio/cityhash/compress/compresstest"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		codec string
	}{
		{name: "uncompressed", codec: "UNCOMPRESSED"},
		{name: "none", codec: "UNCOMPRESSED"},
		{name: "snappy", codec: "SNAPPY"},
		{name: "gzip", codec: "GZIP"},
		{name: "GZ", codec: "GZIP"},
		{name: "brotli", codec: "BROTLI"},
		{name: "br", codec: "BROTLI"},
		{name: "zstd", codec: "ZSTD"},
		{name: " Zst ", codec: "ZSTD"},
		{name: "lz4", codec: "LZ4"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			codec, err := codecs.Lookup(test.name)
			require.NoError(t, err)
			assert.Equal(t, test.codec, codec.String())
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	codec, err := codecs.Lookup("lzma")
	assert.Nil(t, codec)
	assert.ErrorIs(t, err, codecs.ErrUnknownCodec)
	assert.Contains(t, err.Error(), `"lzma"`)
}

func TestNames(t *testing.T) {
	assert.Equal(t,
		[]string{"brotli", "gzip", "lz4", "snappy", "uncompressed", "zstd"},
		codecs.Names(),
	)

	data := bytes.Repeat([]byte("cityhash"), 128)
	for _, name := range codecs.Names() {
		codec, err := codecs.Lookup(name)
		require.NoError(t, err)

		encoded, err := compresstest.Encode(name, data)
		require.NoError(t, err, name)
		decoded, err := codec.Decode(nil, encoded)
		require.NoError(t, err, name)
		assert.Equal(t, data, decoded, name)
	}
}
