// Package compress provides the generic APIs implemented by the compression
// codecs of the compress sub-packages.
//
// The codecs are used to decode inputs before computing their fingerprints,
// so that the hash of a compressed file is the hash of its content. Only the
// decoding side is exposed; producing compressed inputs is left to the tools
// that wrote them.
package compress

import (
	"bytes"
	"io"
	"sync"
)

// The Codec interface represents compression codecs implemented by the
// compress sub-packages.
//
// Codec instances must be safe to use concurrently from multiple goroutines.
type Codec interface {
	// Returns a human-readable name for the codec.
	String() string

	// Writes the uncompressed version of src to dst and returns it.
	//
	// The method automatically reallocates the output buffer if its capacity
	// was too small to hold the uncompressed data.
	Decode(dst, src []byte) ([]byte, error)

	// Returns a reader which decompresses the data read from r.
	NewReader(r io.Reader) (Reader, error)
}

type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

// Decompressor pools the readers of a codec so repeated calls to Decode do not
// allocate new decoder state.
type Decompressor struct {
	readers sync.Pool
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}
