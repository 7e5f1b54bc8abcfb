package tuxobj

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// String is UTF-8 text behind a 2-byte byte-length prefix.
type String string

func (String) TypeKey() TypeKey { return KeyString }

func (v String) Size() int { return len(v) + 2 }

func (String) ConstSize() (int, bool) { return 0, false }

func (String) DecodeSize(rs io.ReadSeeker) (int, error) { return prefixedSize(rs) }

func (String) Skip(rs io.ReadSeeker) error { return skipPrefixed(rs) }

func (v String) WriteTo(w io.Writer) (int64, error) {
	return writePrefixed(w, []byte(v))
}

func (String) Decode(r io.Reader) (String, error) {
	b, err := readPrefixed(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return String(b), nil
}

func (String) isValue() {}

// Bytes is an opaque byte blob behind a 2-byte length prefix.
type Bytes []byte

func (Bytes) TypeKey() TypeKey { return KeyBytes }

func (v Bytes) Size() int { return len(v) + 2 }

func (Bytes) ConstSize() (int, bool) { return 0, false }

func (Bytes) DecodeSize(rs io.ReadSeeker) (int, error) { return prefixedSize(rs) }

func (Bytes) Skip(rs io.ReadSeeker) error { return skipPrefixed(rs) }

func (v Bytes) WriteTo(w io.Writer) (int64, error) {
	return writePrefixed(w, v)
}

func (Bytes) Decode(r io.Reader) (Bytes, error) {
	b, err := readPrefixed(r)
	if err != nil {
		return nil, err
	}
	return Bytes(b), nil
}

func (Bytes) isValue() {}

func writePrefixed(w io.Writer, b []byte) (int64, error) {
	n, err := writeLen(w, len(b))
	if err != nil {
		return n, err
	}
	m, err := writeBytes(w, b)
	return n + m, err
}

func readPrefixed(r io.Reader) ([]byte, error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading %d byte payload: %w", n, err)
	}
	return buf, nil
}

func prefixedSize(rs io.ReadSeeker) (int, error) {
	return peekSize(rs, func(rs io.ReadSeeker) (int, error) {
		n, err := readLen(rs)
		if err != nil {
			return 0, err
		}
		return n + 2, nil
	})
}

func skipPrefixed(rs io.ReadSeeker) error {
	n, err := readLen(rs)
	if err != nil {
		return err
	}
	return skipN(rs, int64(n))
}
