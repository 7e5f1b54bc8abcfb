package tuxobj

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Value is one of the storable scalar types: String, Bytes, Bool, U8, U16,
// U32, U64, I8, I16, I32, I64, F32, F64, Date, Time, DateTime or UUID.
//
// On the wire a Value is its type key followed by its own encoding.
type Value interface {
	Writable
	Typed
	isValue()
}

type valueVariant struct {
	key    TypeKey
	decode func(io.Reader) (Value, error)
	size   func(io.ReadSeeker) (int, error)
	skip   func(io.ReadSeeker) error
}

func variant[T interface {
	Value
	Readable[T]
}]() valueVariant {
	var zero T
	return valueVariant{
		key: zero.TypeKey(),
		decode: func(r io.Reader) (Value, error) {
			v, err := zero.Decode(r)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		size: ReadSize[T],
		skip: Skip[T],
	}
}

// valueVariants is indexed by type key.
var valueVariants = registerVariants(
	variant[String](),
	variant[Bytes](),
	variant[Bool](),
	variant[U8](),
	variant[U16](),
	variant[U32](),
	variant[U64](),
	variant[I8](),
	variant[I16](),
	variant[I32](),
	variant[I64](),
	variant[F32](),
	variant[F64](),
	variant[Date](),
	variant[Time](),
	variant[DateTime](),
	variant[UUID](),
)

func registerVariants(vs ...valueVariant) *[256]*valueVariant {
	var table [256]*valueVariant
	for i := range vs {
		v := &vs[i]
		if table[v.key] != nil {
			panic(fmt.Sprintf("tuxobj: type key %v registered twice", v.key))
		}
		if !v.key.Known() {
			panic(fmt.Sprintf("tuxobj: type key %d missing from registry", uint8(v.key)))
		}
		table[v.key] = v
	}
	return &table
}

func lookupVariant(key byte) (*valueVariant, error) {
	v := valueVariants[key]
	if v == nil {
		return nil, &UnknownTypeKeyError{Key: key}
	}
	return v, nil
}

// WriteValue writes v's type key followed by v.
func WriteValue(w io.Writer, v Value) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil value", ErrInvalidValue)
	}
	return WriteTyped(w, v)
}

// ValueSize is the encoded size of v including its type key.
func ValueSize(v Value) int {
	return 1 + v.Size()
}

// ReadValue reads a type key and the variant it names.
func ReadValue(r io.Reader) (Value, error) {
	key, err := readByte(r)
	if err != nil {
		return nil, err
	}
	v, err := lookupVariant(key)
	if err != nil {
		return nil, err
	}
	return v.decode(r)
}

// ReadValueSize reports the encoded size, type key included, of the Value
// at rs without moving rs.
func ReadValueSize(rs io.ReadSeeker) (int, error) {
	return peekSize(rs, func(rs io.ReadSeeker) (int, error) {
		key, err := readByte(rs)
		if err != nil {
			return 0, err
		}
		v, err := lookupVariant(key)
		if err != nil {
			return 0, err
		}
		n, err := v.size(rs)
		return 1 + n, err
	})
}

// SkipValue advances rs past one Value.
func SkipValue(rs io.ReadSeeker) error {
	key, err := readByte(rs)
	if err != nil {
		return err
	}
	v, err := lookupVariant(key)
	if err != nil {
		return err
	}
	return v.skip(rs)
}

// ValueOf converts a Go value into the matching Value variant. It accepts
// the variants themselves, their underlying Go types, time.Time (as a
// DateTime) and uuid.UUID.
func ValueOf(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case []byte:
		return Bytes(x), nil
	case bool:
		return Bool(x), nil
	case uint8:
		return U8(x), nil
	case uint16:
		return U16(x), nil
	case uint32:
		return U32(x), nil
	case uint64:
		return U64(x), nil
	case int8:
		return I8(x), nil
	case int16:
		return I16(x), nil
	case int32:
		return I32(x), nil
	case int64:
		return I64(x), nil
	case int:
		return I64(x), nil
	case float32:
		return F32(x), nil
	case float64:
		return F64(x), nil
	case time.Time:
		return DateTimeOf(x)
	case uuid.UUID:
		return UUID(x), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, x)
	}
}

// Native converts v back into a plain Go value, for rendering with
// encoding libraries. Dates become "YYYY-MM-DD" strings, valid times of day
// time.Duration, valid DateTimes time.Time and UUIDs uuid.UUID. Calendar
// values that do not form a valid instant are returned unchanged.
func Native(v Value) any {
	switch v := v.(type) {
	case String:
		return string(v)
	case Bytes:
		return []byte(v)
	case Bool:
		return bool(v)
	case U8:
		return uint8(v)
	case U16:
		return uint16(v)
	case U32:
		return uint32(v)
	case U64:
		return uint64(v)
	case I8:
		return int8(v)
	case I16:
		return int16(v)
	case I32:
		return int32(v)
	case I64:
		return int64(v)
	case F32:
		return float32(v)
	case F64:
		return float64(v)
	case Date:
		return fmt.Sprintf("%04d-%02d-%02d", v.Year, v.Month, v.Day)
	case Time:
		if d, err := v.Duration(); err == nil {
			return d
		}
		return v
	case DateTime:
		if t, err := v.ToTime(); err == nil {
			return t
		}
		return v
	case UUID:
		return uuid.UUID(v)
	default:
		return v
	}
}
