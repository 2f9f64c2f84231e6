// Package plistio adapts the resumable plist.Parser to io.Reader-based
// inputs: files, sockets, or any stream that may carry more than one
// concatenated ASCII plist document.
package plistio

import (
	"io"

	"github.com/ckhardin/libplist-posix/plist"
)

// DefaultChunkSize is the number of bytes Decoder reads per underlying
// Read call when no WithChunkSize option is given.
const DefaultChunkSize = 4096

// Option configures a Decoder.
type Option func(*Decoder)

// WithChunkSize overrides the read chunk size. It panics on a
// non-positive size, a programmer error rather than a runtime one.
func WithChunkSize(n int) Option {
	if n <= 0 {
		panic("plistio: chunk size must be positive")
	}
	return func(d *Decoder) { d.chunkSize = n }
}

// Decoder reads fixed-size chunks from an io.Reader and feeds them to
// an internal plist.Parser, yielding one complete document per Decode
// call. This supports a stream of concatenated ASCII plist documents
// without changing plist.Parser's own single-document contract.
type Decoder struct {
	r         io.Reader
	p         *plist.Parser
	chunkSize int
	buf       []byte
	eof       bool
	started   bool // true once bytes toward the next document have been fed
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: r, p: plist.NewParser(), chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(d)
	}
	d.buf = make([]byte, d.chunkSize)
	return d
}

// Decode parses and returns the next complete document from the
// underlying reader. It returns io.EOF once the reader is exhausted
// between documents, and io.ErrUnexpectedEOF if the reader ends
// mid-document.
func (d *Decoder) Decode() (*plist.Node, error) {
	if d.p.Done() {
		return d.p.Result()
	}
	if d.eof {
		return nil, io.EOF
	}
	for {
		n, err := d.r.Read(d.buf)
		if n > 0 {
			d.started = true
			if feedErr := d.p.Feed(d.buf[:n]); feedErr != nil {
				return nil, feedErr
			}
			if d.p.Done() {
				node, resErr := d.p.Result()
				d.started = false
				return node, resErr
			}
		}
		if err != nil {
			if err == io.EOF {
				d.eof = true
				if !d.started {
					return nil, io.EOF
				}
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
	}
}
