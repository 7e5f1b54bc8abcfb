package tuxobj

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

// TagKey is a type usable as a Tags key.
type TagKey[K any] interface {
	comparable
	Codec[K]
}

// Tags maps keys to Values. It is the metadata container stored in an
// object's tags section.
//
// Encoding: 2-byte entry count, then each key followed by its Value (type
// key and value). Entry order is unspecified and is not preserved.
type Tags[K TagKey[K]] struct {
	entries map[K]Value
}

// StringTags is Tags keyed by String, the default tag map.
type StringTags = Tags[String]

// MetadataMap is Tags keyed by HTTP-style header names.
type MetadataMap = Tags[MetaKey]

// NewTags returns an empty tag map.
func NewTags[K TagKey[K]]() Tags[K] {
	return Tags[K]{entries: make(map[K]Value)}
}

// Insert sets key to v and returns the value it replaced, if any. A nil v
// removes key.
func (t *Tags[K]) Insert(key K, v Value) (Value, bool) {
	if v == nil {
		return t.Remove(key)
	}
	if t.entries == nil {
		t.entries = make(map[K]Value)
	}
	prev, ok := t.entries[key]
	t.entries[key] = v
	return prev, ok
}

// Get returns the value stored under key.
func (t Tags[K]) Get(key K) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Remove deletes key and returns the value it held.
func (t *Tags[K]) Remove(key K) (Value, bool) {
	prev, ok := t.entries[key]
	delete(t.entries, key)
	return prev, ok
}

func (t Tags[K]) Len() int { return len(t.entries) }

func (t Tags[K]) IsEmpty() bool { return len(t.entries) == 0 }

// All iterates over the entries in no particular order.
func (t Tags[K]) All() iter.Seq2[K, Value] {
	return maps.All(t.entries)
}

func (t Tags[K]) Size() int {
	n := 2
	for k, v := range t.entries {
		n += k.Size() + ValueSize(v)
	}
	return n
}

func (Tags[K]) ConstSize() (int, bool) { return 0, false }

func (t Tags[K]) WriteTo(w io.Writer) (int64, error) {
	total, err := writeLen(w, len(t.entries))
	if err != nil {
		return total, err
	}
	for k, v := range t.entries {
		n, err := k.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
		n, err = WriteValue(w, v)
		total += n
		if err != nil {
			return total, fmt.Errorf("tag %v: %w", k, err)
		}
	}
	return total, nil
}

func (Tags[K]) Decode(r io.Reader) (Tags[K], error) {
	n, err := readLen(r)
	if err != nil {
		return Tags[K]{}, err
	}
	t := Tags[K]{entries: make(map[K]Value, n)}
	var zero K
	for i := 0; i < n; i++ {
		k, err := zero.Decode(r)
		if err != nil {
			return Tags[K]{}, fmt.Errorf("tag key %d: %w", i, err)
		}
		v, err := ReadValue(r)
		if err != nil {
			return Tags[K]{}, fmt.Errorf("tag %v: %w", k, err)
		}
		t.entries[k] = v
	}
	return t, nil
}

func (Tags[K]) DecodeSize(rs io.ReadSeeker) (int, error) {
	return peekSize(rs, func(rs io.ReadSeeker) (int, error) {
		n, err := readLen(rs)
		if err != nil {
			return 0, err
		}
		total := 2
		for i := 0; i < n; i++ {
			ks, err := advance[K](rs)
			if err != nil {
				return 0, err
			}
			vs, err := ReadValueSize(rs)
			if err != nil {
				return 0, err
			}
			if err := skipN(rs, int64(vs)); err != nil {
				return 0, err
			}
			total += ks + vs
		}
		return total, nil
	})
}

func (Tags[K]) Skip(rs io.ReadSeeker) error {
	n, err := readLen(rs)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := Skip[K](rs); err != nil {
			return err
		}
		if err := SkipValue(rs); err != nil {
			return err
		}
	}
	return nil
}

// ReadTagCount reads the entry count at the start of an encoded tag map.
func ReadTagCount(r io.Reader) (int, error) {
	return readLen(r)
}

// FindTag scans the encoded tag map at rs for key, decoding only the
// matching value. rs is left somewhere inside the tag map.
func FindTag[K TagKey[K]](rs io.ReadSeeker, key K) (Value, bool, error) {
	n, err := readLen(rs)
	if err != nil {
		return nil, false, err
	}
	var zero K
	for i := 0; i < n; i++ {
		k, err := zero.Decode(rs)
		if err != nil {
			return nil, false, fmt.Errorf("tag key %d: %w", i, err)
		}
		if k == key {
			v, err := ReadValue(rs)
			if err != nil {
				return nil, false, err
			}
			return v, true, nil
		}
		if err := SkipValue(rs); err != nil {
			return nil, false, err
		}
	}
	return nil, false, nil
}
