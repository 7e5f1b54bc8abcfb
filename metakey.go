package tuxobj

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// MetaKey is an HTTP header field name used as a tag key. Names compare
// case-insensitively and are stored lowercased. On the wire a MetaKey is a
// String.
type MetaKey struct {
	name string
}

// MetaKeyError reports a name that is not a valid HTTP header field name.
type MetaKeyError struct {
	Name string
}

func (e *MetaKeyError) Error() string {
	return fmt.Sprintf("%v: invalid header name %q", ErrOther, e.Name)
}

func (e *MetaKeyError) Unwrap() error { return ErrOther }

// NewMetaKey validates name and returns its canonical key.
func NewMetaKey(name string) (MetaKey, error) {
	if !httpguts.ValidHeaderFieldName(name) {
		return MetaKey{}, &MetaKeyError{Name: name}
	}
	return MetaKey{name: strings.ToLower(name)}, nil
}

// MustMetaKey is NewMetaKey for names known to be valid.
func MustMetaKey(name string) MetaKey {
	k, err := NewMetaKey(name)
	if err != nil {
		panic(err)
	}
	return k
}

func (k MetaKey) String() string { return k.name }

func (MetaKey) TypeKey() TypeKey { return KeyString }

func (k MetaKey) Size() int { return len(k.name) + 2 }

func (MetaKey) ConstSize() (int, bool) { return 0, false }

func (MetaKey) DecodeSize(rs io.ReadSeeker) (int, error) { return prefixedSize(rs) }

func (MetaKey) Skip(rs io.ReadSeeker) error { return skipPrefixed(rs) }

func (k MetaKey) WriteTo(w io.Writer) (int64, error) {
	if k.name == "" {
		return 0, &MetaKeyError{}
	}
	return writePrefixed(w, []byte(k.name))
}

func (MetaKey) Decode(r io.Reader) (MetaKey, error) {
	b, err := readPrefixed(r)
	if err != nil {
		return MetaKey{}, err
	}
	return NewMetaKey(string(b))
}
