package compress_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/segmentio/cityhash"
	"github.com/segmentio/cityhash/compress"
	"github.com/segmentio/cityhash/compress/brotli"
	"github.com/segmentio/cityhash/compress/compresstest"
	"github.com/segmentio/cityhash/compress/gzip"
	"github.com/segmentio/cityhash/compress/lz4"
	"github.com/segmentio/cityhash/compress/snappy"
	"github.com/segmentio/cityhash/compress/uncompressed"
	"github.com/segmentio/cityhash/compress/zstd"
)

var tests = [...]struct {
	scenario string
	codec    compress.Codec
}{
	{
		scenario: "uncompressed",
		codec:    new(uncompressed.Codec),
	},

	{
		scenario: "snappy",
		codec:    new(snappy.Codec),
	},

	{
		scenario: "gzip",
		codec:    new(gzip.Codec),
	},

	{
		scenario: "brotli",
		codec:    new(brotli.Codec),
	},

	{
		scenario: "zstd",
		codec:    new(zstd.Codec),
	},

	{
		scenario: "lz4",
		codec:    new(lz4.Codec),
	},
}

func TestCompressionCodec(t *testing.T) {
	random := bytes.Repeat([]byte("1234567890qwertyuiopasdfghjklzxcvbnm"), 1000)
	output := make([]byte, 0, len(random))

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			buffer, err := compresstest.Encode(test.scenario, random)
			if err != nil {
				t.Fatal(err)
			}

			const N = 10
			// Run the test multiple times to exercise the pooled readers
			// which are reset between calls to Decode.
			for i := 0; i < N; i++ {
				output, err = test.codec.Decode(output[:0], buffer)
				if err != nil {
					t.Fatal(err)
				}

				if !bytes.Equal(random, output) {
					t.Errorf("content mismatch after decompressing (attempt %d/%d)", i+1, N)
				}
			}
		})
	}
}

func TestCompressionCodecCorrupted(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xFF, 0x00, 0xA5}, 64)

	for _, test := range tests {
		switch test.scenario {
		case "uncompressed", "brotli":
			// Neither format starts with a magic number to reject garbage on.
			continue
		}
		t.Run(test.scenario, func(t *testing.T) {
			if _, err := test.codec.Decode(nil, garbage); err == nil {
				t.Error("decoding garbage did not fail")
			}
		})
	}
}

func TestCompressionCodecStream(t *testing.T) {
	content := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 500)
	want := cityhash.Hash64(content)

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			compressed, err := compresstest.Encode(test.scenario, content)
			if err != nil {
				t.Fatal(err)
			}

			r, err := test.codec.NewReader(bytes.NewReader(compressed))
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()

			decoded, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if got := cityhash.Hash64(decoded); got != want {
				t.Errorf("fingerprint mismatch after decoding: want=%016x got=%016x", want, got)
			}
		})
	}
}

func TestCompressionCodecString(t *testing.T) {
	seen := make(map[string]bool)
	for _, test := range tests {
		name := test.codec.String()
		if name == "" {
			t.Errorf("%s: empty codec name", test.scenario)
		}
		if seen[name] {
			t.Errorf("%s: duplicate codec name %q", test.scenario, name)
		}
		seen[name] = true
	}
}

type simpleReader struct{ io.Reader }

func (s *simpleReader) Close() error            { return nil }
func (s *simpleReader) Reset(r io.Reader) error { s.Reader = r; return nil }

func BenchmarkDecompressor(b *testing.B) {
	decompressor := compress.Decompressor{}
	src := make([]byte, 1000)
	dst := make([]byte, 1000)

	allocs := testing.AllocsPerRun(b.N, func() {
		var err error
		dst, err = decompressor.Decode(dst, src, func(r io.Reader) (compress.Reader, error) {
			return &simpleReader{Reader: r}, nil
		})
		if err != nil {
			b.Fatal(err)
		}
	})

	if allocs != 0 {
		b.Errorf("too many memory allocations: %g > 0", allocs)
	}
}
