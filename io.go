package tuxobj

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// FromBytes decodes one T from the front of b. Trailing bytes are ignored.
func FromBytes[T Readable[T]](b []byte) (T, error) {
	var zero T
	return zero.Decode(bytes.NewReader(b))
}

// ReadSize reports the encoded size of the T at the current position of rs
// without moving it.
func ReadSize[T Readable[T]](rs io.ReadSeeker) (int, error) {
	var zero T
	if n, ok := zero.ConstSize(); ok {
		return n, nil
	}
	return zero.DecodeSize(rs)
}

// Skip advances rs past one encoded T.
func Skip[T Readable[T]](rs io.ReadSeeker) error {
	var zero T
	return zero.Skip(rs)
}

// ToBytes encodes v into a buffer sized by v.Size(). A disagreement between
// Size and WriteTo is reported as ErrSizeMismatch.
func ToBytes(v Writable) ([]byte, error) {
	size := v.Size()
	buf := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := v.WriteTo(buf); err != nil {
		return nil, err
	}
	if buf.Len() != size {
		return nil, fmt.Errorf("%w: size %d, wrote %d", ErrSizeMismatch, size, buf.Len())
	}
	return buf.Bytes(), nil
}

// WriteTyped writes v's discriminator followed by v.
func WriteTyped(w io.Writer, v interface {
	Writable
	Typed
}) (int64, error) {
	n, err := writeBytes(w, []byte{byte(v.TypeKey())})
	if err != nil {
		return n, err
	}
	m, err := v.WriteTo(w)
	return n + m, err
}

// skipN seeks n bytes forward and fails if that passes the end of rs.
func skipN(rs io.ReadSeeker, n int64) error {
	if n == 0 {
		return nil
	}
	pos, err := rs.Seek(n, io.SeekCurrent)
	if err != nil {
		return err
	}
	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if pos > end {
		return fmt.Errorf("%w: %w", ErrUnexpectedEOF, io.ErrUnexpectedEOF)
	}
	_, err = rs.Seek(pos, io.SeekStart)
	return err
}

// peekSize runs probe and rewinds rs to where it started.
func peekSize(rs io.ReadSeeker, probe func(io.ReadSeeker) (int, error)) (int, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	n, probeErr := probe(rs)
	if _, err := rs.Seek(start, io.SeekStart); err != nil && probeErr == nil {
		probeErr = err
	}
	if probeErr != nil {
		return 0, probeErr
	}
	return n, nil
}

func writeBytes(w io.Writer, b []byte) (int64, error) {
	n, err := w.Write(b)
	return int64(n), err
}

func writeLen(w io.Writer, n int) (int64, error) {
	if err := checkLen(n); err != nil {
		return 0, err
	}
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(n))
	return writeBytes(w, buf[:])
}

func readLen(r io.Reader) (int, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int(binary.LittleEndian.Uint16(buf[:])), nil
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
