// Package compresstest produces compressed fixtures for the tests of packages
// that decode them.
package compresstest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Encode compresses data with the codec registered under name, in the stream
// format the matching codec of the compress sub-packages reads.
func Encode(name string, data []byte) ([]byte, error) {
	buf := new(bytes.Buffer)

	var w io.WriteCloser
	switch name {
	case "uncompressed":
		return append([]byte(nil), data...), nil
	case "snappy":
		w = snappy.NewBufferedWriter(buf)
	case "gzip":
		w = gzip.NewWriter(buf)
	case "brotli":
		w = brotli.NewWriter(buf)
	case "zstd":
		z, err := zstd.NewWriter(buf, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		w = z
	case "lz4":
		w = lz4.NewWriter(buf)
	default:
		return nil, fmt.Errorf("compresstest: no encoder for %q", name)
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
