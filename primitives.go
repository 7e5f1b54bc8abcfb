package tuxobj

import (
	"fmt"
	"io"
)

//go:generate go run ./internal/cmd/gencodec -out codec_gen.go

// Bool is encoded as a single 0 or 1 byte. Any other byte is rejected.
type Bool bool

func (Bool) TypeKey() TypeKey { return KeyBool }

func (Bool) Size() int { return 1 }

func (Bool) ConstSize() (int, bool) { return 1, true }

func (Bool) DecodeSize(io.ReadSeeker) (int, error) { return 1, nil }

func (Bool) Skip(rs io.ReadSeeker) error { return skipN(rs, 1) }

func (v Bool) WriteTo(w io.Writer) (int64, error) {
	b := byte(0)
	if v {
		b = 1
	}
	return writeBytes(w, []byte{b})
}

func (Bool) Decode(r io.Reader) (Bool, error) {
	b, err := readByte(r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: got %d", ErrInvalidBool, b)
	}
}

func (Bool) isValue() {}

// ArrayLen fixes the length of a FixedBytes at the type level.
type ArrayLen interface {
	Len() int
}

type (
	Len16 struct{}
	Len32 struct{}
	Len64 struct{}
)

func (Len16) Len() int { return 16 }
func (Len32) Len() int { return 32 }
func (Len64) Len() int { return 64 }

// FixedBytes is a byte array whose length N is known statically. It is
// encoded like Bytes, but decoding fails unless the declared length is N.
//
// Writing a FixedBytes whose slice length is not N fails with
// ErrLengthMismatch.
type FixedBytes[N ArrayLen] []byte

func arrayLen[N ArrayLen]() int {
	var n N
	return n.Len()
}

func (FixedBytes[N]) TypeKey() TypeKey { return KeyBytes }

func (FixedBytes[N]) Size() int { return arrayLen[N]() + 2 }

func (FixedBytes[N]) ConstSize() (int, bool) { return arrayLen[N]() + 2, true }

func (FixedBytes[N]) DecodeSize(io.ReadSeeker) (int, error) { return arrayLen[N]() + 2, nil }

func (FixedBytes[N]) Skip(rs io.ReadSeeker) error { return skipN(rs, int64(arrayLen[N]()+2)) }

func (v FixedBytes[N]) WriteTo(w io.Writer) (int64, error) {
	n := arrayLen[N]()
	if len(v) != n {
		return 0, fmt.Errorf("%w: have %d bytes, want %d", ErrLengthMismatch, len(v), n)
	}
	m, err := writeLen(w, n)
	if err != nil {
		return m, err
	}
	k, err := writeBytes(w, v)
	return m + k, err
}

func (FixedBytes[N]) Decode(r io.Reader) (FixedBytes[N], error) {
	n := arrayLen[N]()
	declared, err := readLen(r)
	if err != nil {
		return nil, err
	}
	if declared != n {
		return nil, fmt.Errorf("%w: declared %d, want %d", ErrLengthMismatch, declared, n)
	}
	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return nil, err
	}
	return FixedBytes[N](buf), nil
}
