// Package lz4 implements the LZ4 compression codec, using the LZ4 frame
// format.
package lz4

import (
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/segmentio/cityhash/compress"
)

type Codec struct {
	r compress.Decompressor
}

func (c *Codec) String() string {
	return "LZ4"
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return c.r.Decode(dst, src, c.NewReader)
}

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	return reader{lz4.NewReader(r)}, nil
}

type reader struct{ *lz4.Reader }

func (r reader) Close() error             { return nil }
func (r reader) Reset(rr io.Reader) error { r.Reader.Reset(rr); return nil }
