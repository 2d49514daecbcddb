// Package codecs maps codec names to the implementations of the compress
// sub-packages.
package codecs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/segmentio/cityhash/compress"
	"github.com/segmentio/cityhash/compress/brotli"
	"github.com/segmentio/cityhash/compress/gzip"
	"github.com/segmentio/cityhash/compress/lz4"
	"github.com/segmentio/cityhash/compress/snappy"
	"github.com/segmentio/cityhash/compress/uncompressed"
	"github.com/segmentio/cityhash/compress/zstd"
)

// ErrUnknownCodec is returned by Lookup when no codec matches a name.
var ErrUnknownCodec = errors.New("unknown compression codec")

var (
	// Uncompressed is a codec which does not compress data.
	Uncompressed uncompressed.Codec

	// Snappy is the SNAPPY compression codec.
	Snappy snappy.Codec

	// Gzip is the GZIP compression codec.
	Gzip gzip.Codec

	// Brotli is the BROTLI compression codec.
	Brotli brotli.Codec

	// Zstd is the ZSTD compression codec.
	Zstd = zstd.Codec{
		Concurrency: zstd.DefaultConcurrency,
	}

	// Lz4 is the LZ4 compression codec.
	Lz4 lz4.Codec
)

var registry = map[string]compress.Codec{
	"uncompressed": &Uncompressed,
	"snappy":       &Snappy,
	"gzip":         &Gzip,
	"brotli":       &Brotli,
	"zstd":         &Zstd,
	"lz4":          &Lz4,
}

var aliases = map[string]string{
	"none": "uncompressed",
	"gz":   "gzip",
	"br":   "brotli",
	"zst":  "zstd",
}

// Lookup returns the codec registered under name. Names are case-insensitive.
func Lookup(name string) (compress.Codec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	if codec, ok := registry[key]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownCodec)
}

// Names returns the sorted list of canonical codec names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
