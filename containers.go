package tuxobj

import (
	"fmt"
	"io"
)

// List is an ordered sequence behind a 2-byte element count.
type List[T Codec[T]] []T

func (l List[T]) Size() int {
	n := 2
	for _, v := range l {
		n += v.Size()
	}
	return n
}

func (List[T]) ConstSize() (int, bool) { return 0, false }

func (l List[T]) WriteTo(w io.Writer) (int64, error) {
	total, err := writeLen(w, len(l))
	if err != nil {
		return total, err
	}
	for _, v := range l {
		n, err := v.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (List[T]) Decode(r io.Reader) (List[T], error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make(List[T], 0, n)
	var zero T
	for i := 0; i < n; i++ {
		v, err := zero.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (List[T]) DecodeSize(rs io.ReadSeeker) (int, error) {
	return peekSize(rs, sequenceSize[T])
}

func (List[T]) Skip(rs io.ReadSeeker) error { return skipSequence[T](rs) }

// Set is an unordered collection of distinct values, encoded like List.
type Set[T interface {
	comparable
	Codec[T]
}] map[T]struct{}

// NewSet returns a Set holding values.
func NewSet[T interface {
	comparable
	Codec[T]
}](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(v T) { s[v] = struct{}{} }

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Size() int {
	n := 2
	for v := range s {
		n += v.Size()
	}
	return n
}

func (Set[T]) ConstSize() (int, bool) { return 0, false }

func (s Set[T]) WriteTo(w io.Writer) (int64, error) {
	total, err := writeLen(w, len(s))
	if err != nil {
		return total, err
	}
	for v := range s {
		n, err := v.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (Set[T]) Decode(r io.Reader) (Set[T], error) {
	n, err := readLen(r)
	if err != nil {
		return nil, err
	}
	out := make(Set[T], n)
	var zero T
	for i := 0; i < n; i++ {
		v, err := zero.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("set element %d: %w", i, err)
		}
		out[v] = struct{}{}
	}
	return out, nil
}

func (Set[T]) DecodeSize(rs io.ReadSeeker) (int, error) {
	return peekSize(rs, sequenceSize[T])
}

func (Set[T]) Skip(rs io.ReadSeeker) error { return skipSequence[T](rs) }

// sequenceSize consumes a count-prefixed run of T and returns its length.
func sequenceSize[T Readable[T]](rs io.ReadSeeker) (int, error) {
	n, err := readLen(rs)
	if err != nil {
		return 0, err
	}
	var zero T
	if c, ok := zero.ConstSize(); ok {
		return 2 + n*c, nil
	}
	total := 2
	for i := 0; i < n; i++ {
		size, err := zero.DecodeSize(rs)
		if err != nil {
			return 0, err
		}
		if err := skipN(rs, int64(size)); err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

func skipSequence[T Readable[T]](rs io.ReadSeeker) error {
	n, err := readLen(rs)
	if err != nil {
		return err
	}
	var zero T
	if c, ok := zero.ConstSize(); ok {
		return skipN(rs, int64(n*c))
	}
	for i := 0; i < n; i++ {
		if err := zero.Skip(rs); err != nil {
			return err
		}
	}
	return nil
}

// Optional is a value that may be absent. It is encoded as a presence byte
// (0 or 1) followed by the value when present.
type Optional[T Codec[T]] struct {
	Value   T
	Present bool
}

// Some returns a present Optional.
func Some[T Codec[T]](v T) Optional[T] { return Optional[T]{Value: v, Present: true} }

// None returns an absent Optional.
func None[T Codec[T]]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.Value, o.Present }

func (o Optional[T]) Size() int {
	if !o.Present {
		return 1
	}
	return 1 + o.Value.Size()
}

func (Optional[T]) ConstSize() (int, bool) { return 0, false }

func (o Optional[T]) WriteTo(w io.Writer) (int64, error) {
	if !o.Present {
		return writeBytes(w, []byte{0})
	}
	n, err := writeBytes(w, []byte{1})
	if err != nil {
		return n, err
	}
	m, err := o.Value.WriteTo(w)
	return n + m, err
}

func (Optional[T]) Decode(r io.Reader) (Optional[T], error) {
	present, err := readPresence(r)
	if err != nil || !present {
		return Optional[T]{}, err
	}
	var zero T
	v, err := zero.Decode(r)
	if err != nil {
		return Optional[T]{}, err
	}
	return Some(v), nil
}

func (Optional[T]) DecodeSize(rs io.ReadSeeker) (int, error) {
	return peekSize(rs, func(rs io.ReadSeeker) (int, error) {
		present, err := readPresence(rs)
		if err != nil || !present {
			return 1, err
		}
		n, err := ReadSize[T](rs)
		return 1 + n, err
	})
}

func (Optional[T]) Skip(rs io.ReadSeeker) error {
	present, err := readPresence(rs)
	if err != nil || !present {
		return err
	}
	return Skip[T](rs)
}

func readPresence(r io.Reader) (bool, error) {
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
		return false, fmt.Errorf("%w: got %d", ErrInvalidPresence, b)
	}
}

// Map is an associative container whose encoding records the key and value
// type keys, so a Map is never silently decoded as one of different types.
//
// Layout: 2-byte count, key type key, value type key, then count pairs.
type Map[K interface {
	comparable
	TypedCodec[K]
}, V TypedCodec[V]] map[K]V

func (m Map[K, V]) Size() int {
	n := 4
	for k, v := range m {
		n += k.Size() + v.Size()
	}
	return n
}

func (Map[K, V]) ConstSize() (int, bool) { return 0, false }

func (m Map[K, V]) WriteTo(w io.Writer) (int64, error) {
	var zk K
	var zv V
	total, err := writeLen(w, len(m))
	if err != nil {
		return total, err
	}
	n, err := writeBytes(w, []byte{byte(zk.TypeKey()), byte(zv.TypeKey())})
	total += n
	if err != nil {
		return total, err
	}
	for k, v := range m {
		n, err := k.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
		n, err = v.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (Map[K, V]) Decode(r io.Reader) (Map[K, V], error) {
	n, err := readMapHeader[K, V](r)
	if err != nil {
		return nil, err
	}
	var zk K
	var zv V
	out := make(Map[K, V], n)
	for i := 0; i < n; i++ {
		k, err := zk.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		v, err := zv.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}
		out[k] = v
	}
	return out, nil
}

func (Map[K, V]) DecodeSize(rs io.ReadSeeker) (int, error) {
	return peekSize(rs, func(rs io.ReadSeeker) (int, error) {
		n, err := readMapHeader[K, V](rs)
		if err != nil {
			return 0, err
		}
		total := 4
		for i := 0; i < n; i++ {
			ks, err := advance[K](rs)
			if err != nil {
				return 0, err
			}
			vs, err := advance[V](rs)
			if err != nil {
				return 0, err
			}
			total += ks + vs
		}
		return total, nil
	})
}

func (Map[K, V]) Skip(rs io.ReadSeeker) error {
	n, err := readMapHeader[K, V](rs)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := Skip[K](rs); err != nil {
			return err
		}
		if err := Skip[V](rs); err != nil {
			return err
		}
	}
	return nil
}

// readMapHeader reads the count and checks both stored type keys.
func readMapHeader[K TypedCodec[K], V TypedCodec[V]](r io.Reader) (int, error) {
	n, err := readLen(r)
	if err != nil {
		return 0, err
	}
	var keys [2]byte
	if err := readFull(r, keys[:]); err != nil {
		return 0, err
	}
	var zk K
	var zv V
	if got := TypeKey(keys[0]); got != zk.TypeKey() {
		return 0, &MismatchedTypeError{Expected: zk.TypeKey(), Found: got}
	}
	if got := TypeKey(keys[1]); got != zv.TypeKey() {
		return 0, &MismatchedTypeError{Expected: zv.TypeKey(), Found: got}
	}
	return n, nil
}

// advance measures the T at rs and moves past it.
func advance[T Readable[T]](rs io.ReadSeeker) (int, error) {
	n, err := ReadSize[T](rs)
	if err != nil {
		return 0, err
	}
	return n, skipN(rs, int64(n))
}
