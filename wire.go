package tuxobj

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Magic is the 3-byte object signature.
var Magic = [3]byte{'T', 'U', 'X'}

const (
	// CurrentVersion is the only format version this package reads.
	CurrentVersion uint8 = 0

	// HeaderSize is the fixed size of the object header. The metadata
	// section starts right after it.
	HeaderSize = 32
)

// ObjectHeader is the fixed 32-byte preamble of every object:
//
//	0   3  magic
//	3   1  version
//	4   5  compression descriptor
//	9   2  tags section offset
//	11  4  content section offset
//	15  8  content length
//	23  1  flags
//	24  8  zero padding
//
// A decoded header is treated as immutable; changing an offset means
// rewriting the whole object.
type ObjectHeader struct {
	Version uint8
	// Compression applies to the content section only.
	Compression   Compression
	TagsStart     uint16
	ContentStart  uint32
	ContentLength uint64
	// Flags is reserved.
	Flags uint8
}

// NewHeader returns a header for an object with empty metadata, tags and
// content sections.
func NewHeader() ObjectHeader {
	return ObjectHeader{
		Version:      CurrentVersion,
		TagsStart:    HeaderSize,
		ContentStart: HeaderSize,
	}
}

// TagsSpace is the number of bytes reserved for tags, including any
// padding kept so the tags can grow without moving the content.
func (h ObjectHeader) TagsSpace() int {
	return int(h.ContentStart) - int(h.TagsStart)
}

// MetaAndTagSpace is the number of bytes between the header and the
// content.
func (h ObjectHeader) MetaAndTagSpace() int {
	return int(h.ContentStart) - HeaderSize
}

// Validate checks the section ordering: content_start >= tags_start >= 32.
func (h ObjectHeader) Validate() error {
	if h.TagsStart < HeaderSize {
		return fmt.Errorf("%w: tags start %d inside header", ErrInvalidHeader, h.TagsStart)
	}
	if h.ContentStart < uint32(h.TagsStart) {
		return fmt.Errorf("%w: content start %d before tags start %d", ErrInvalidHeader, h.ContentStart, h.TagsStart)
	}
	return nil
}

func (ObjectHeader) Size() int { return HeaderSize }

func (ObjectHeader) ConstSize() (int, bool) { return HeaderSize, true }

func (ObjectHeader) DecodeSize(io.ReadSeeker) (int, error) { return HeaderSize, nil }

func (ObjectHeader) Skip(rs io.ReadSeeker) error { return skipN(rs, HeaderSize) }

func (h ObjectHeader) WriteTo(w io.Writer) (int64, error) {
	buf, err := h.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return writeBytes(w, buf)
}

// MarshalBinary returns the 32-byte encoding of h.
func (h ObjectHeader) MarshalBinary() ([]byte, error) {
	if h.Version != CurrentVersion {
		return nil, &UnsupportedVersionError{Version: h.Version}
	}
	if !h.Compression.Type.valid() {
		return nil, fmt.Errorf("%w %d", ErrInvalidCompression, uint8(h.Compression.Type))
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, HeaderSize)
	copy(buf[0:3], Magic[:])
	buf[3] = h.Version
	h.Compression.put(buf[4:9])
	binary.LittleEndian.PutUint16(buf[9:11], h.TagsStart)
	binary.LittleEndian.PutUint32(buf[11:15], h.ContentStart)
	binary.LittleEndian.PutUint64(buf[15:23], h.ContentLength)
	buf[23] = h.Flags
	return buf, nil
}

func (ObjectHeader) Decode(r io.Reader) (ObjectHeader, error) {
	return ReadHeader(r)
}

// ReadHeader reads and validates exactly HeaderSize bytes from r.
func ReadHeader(r io.Reader) (ObjectHeader, error) {
	var buf [HeaderSize]byte
	if err := readFull(r, buf[:]); err != nil {
		return ObjectHeader{}, err
	}
	return HeaderFromBytes(buf[:])
}

// HeaderFromBytes decodes the header at the front of b. The magic is checked
// first, then the version, and only then the remaining fields.
func HeaderFromBytes(b []byte) (ObjectHeader, error) {
	if len(b) >= len(Magic) && [3]byte(b[0:3]) != Magic {
		return ObjectHeader{}, ErrInvalidMagic
	}
	if len(b) < HeaderSize {
		return ObjectHeader{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrUnexpectedEOF, HeaderSize, len(b))
	}
	if b[3] != CurrentVersion {
		return ObjectHeader{}, &UnsupportedVersionError{Version: b[3]}
	}
	comp, err := parseCompression(b[4:9])
	if err != nil {
		return ObjectHeader{}, err
	}
	for _, p := range b[24:HeaderSize] {
		if p != 0 {
			return ObjectHeader{}, fmt.Errorf("%w: padding must be zero", ErrInvalidHeader)
		}
	}
	h := ObjectHeader{
		Version:       b[3],
		Compression:   comp,
		TagsStart:     binary.LittleEndian.Uint16(b[9:11]),
		ContentStart:  binary.LittleEndian.Uint32(b[11:15]),
		ContentLength: binary.LittleEndian.Uint64(b[15:23]),
		Flags:         b[23],
	}
	if err := h.Validate(); err != nil {
		return ObjectHeader{}, err
	}
	return h, nil
}
