package tuxobj

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidMagic       = errors.New("tuxobj: invalid magic")
	ErrUnsupportedVersion = errors.New("tuxobj: unsupported version")
	ErrInvalidHeader      = errors.New("tuxobj: invalid object header")
	ErrInvalidCompression = errors.New("tuxobj: invalid compression type")
	ErrUnexpectedEOF      = errors.New("tuxobj: unexpected end of input")
	ErrUnknownTypeKey     = errors.New("tuxobj: unknown type key")
	ErrTypeTooLarge       = errors.New("tuxobj: type too large")
	ErrMismatchedType     = errors.New("tuxobj: mismatched object type")
	ErrInvalidValue       = errors.New("tuxobj: invalid value")
	ErrLimitExceeded      = errors.New("tuxobj: limit exceeded")
	ErrSizeMismatch       = errors.New("tuxobj: size does not match written length")
	ErrOther              = errors.New("tuxobj: decoding failed")
)

// Value-level failures. Each matches ErrInvalidValue.
var (
	ErrInvalidBool     = fmt.Errorf("%w: bool must be 0 or 1", ErrInvalidValue)
	ErrInvalidUTF8     = fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidValue)
	ErrLengthMismatch  = fmt.Errorf("%w: declared length does not match array length", ErrInvalidValue)
	ErrInvalidPresence = fmt.Errorf("%w: optional presence flag must be 0 or 1", ErrInvalidValue)
	ErrInvalidObject   = fmt.Errorf("%w: invalid object", ErrInvalidValue)
)

// UnsupportedVersionError reports a header whose magic was valid but whose
// version byte is not understood.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%v %d", ErrUnsupportedVersion, e.Version)
}

func (e *UnsupportedVersionError) Unwrap() error { return ErrUnsupportedVersion }

// UnknownTypeKeyError carries the discriminator byte that did not match any
// known type.
type UnknownTypeKeyError struct {
	Key uint8
}

func (e *UnknownTypeKeyError) Error() string {
	return fmt.Sprintf("%v %d", ErrUnknownTypeKey, e.Key)
}

func (e *UnknownTypeKeyError) Unwrap() error { return ErrUnknownTypeKey }

// TooLargeError reports a length that does not fit in a 16-bit prefix.
type TooLargeError struct {
	Len int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%v: %d exceeds %d", ErrTypeTooLarge, e.Len, MaxLen)
}

func (e *TooLargeError) Unwrap() error { return ErrTypeTooLarge }

// MismatchedTypeError reports a typed map whose stored key or value type
// disagrees with the type it is being decoded into.
type MismatchedTypeError struct {
	Expected TypeKey
	Found    TypeKey
}

func (e *MismatchedTypeError) Error() string {
	return fmt.Sprintf("%v: expected %v, found %v", ErrMismatchedType, e.Expected, e.Found)
}

func (e *MismatchedTypeError) Unwrap() error { return ErrMismatchedType }

// readFull is io.ReadFull with short reads reported as ErrUnexpectedEOF.
// The io error stays in the chain so io.ErrUnexpectedEOF still matches.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrUnexpectedEOF, err)
	}
	return err
}

func checkLen(n int) error {
	if n > MaxLen {
		return &TooLargeError{Len: n}
	}
	return nil
}
