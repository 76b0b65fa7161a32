// Package caseset stores generated cases on disk.
//
// A case-set file is the magic "FPCS", a version byte and a compression
// byte, followed by a single block holding the payload:
//
//	[uncompressed size u32][compressed size u32][data]
//
// A compressed size of zero means the data is stored uncompressed. The
// payload holds the builtin name, the kind, and the cases, with intervals in
// the encoding of fp.Interval.MarshalBinary.
package caseset

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	fp "github.com/shabbyrobe/go-fp"
)

const version = 1

var magic = []byte("FPCS")

var (
	ErrBadMagic = errors.New("caseset: bad magic")
	ErrVersion  = errors.New("caseset: unsupported version")
	ErrCorrupt  = errors.New("caseset: corrupt data")
)

// Set is the generated cases of one builtin for one kind.
type Set struct {
	Builtin string
	Kind    fp.Kind
	Cases   []fp.Case
}

func (s *Set) String() string {
	return fmt.Sprintf("%s/%s (%d cases)", s.Builtin, s.Kind, len(s.Cases))
}

// Encode writes s to w.
func (s *Set) Encode(w io.Writer, c Compression) error {
	e := &encoder{}
	e.string(s.Builtin)
	e.byte(byte(s.Kind))
	if err := e.cases(s.Cases); err != nil {
		return err
	}

	block, err := compressBlock(e.buf, c)
	if err != nil {
		return err
	}

	header := make([]byte, 0, len(magic)+2)
	header = append(header, magic...)
	header = append(header, version, byte(c))
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(block)
	return err
}

// Decode reads a Set written by Encode. Malformed input returns an error
// matching ErrBadMagic, ErrVersion or ErrCorrupt.
func Decode(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < len(magic)+2 || !bytes.Equal(data[:len(magic)], magic) {
		return nil, ErrBadMagic
	}
	if v := data[len(magic)]; v != version {
		return nil, fmt.Errorf("%w %d", ErrVersion, v)
	}
	c := Compression(data[len(magic)+1])

	payload, err := decompressBlock(data[len(magic)+2:], c)
	if err != nil {
		return nil, err
	}

	d := &decoder{buf: payload}
	s := &Set{}
	s.Builtin = d.string()
	s.Kind = d.kind()
	s.Cases = d.cases()
	if d.err != nil {
		return nil, d.err
	}
	if len(d.buf) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(d.buf))
	}
	return s, nil
}
