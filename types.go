package tuxobj

import (
	"fmt"
	"io"
)

// MaxLen is the largest length a 2-byte length prefix can carry.
const MaxLen = 1<<16 - 1

// TypeKey is the one-byte discriminator identifying a storable type. It is
// written before every Value and twice in front of every typed Map.
type TypeKey uint8

const (
	KeyU8       TypeKey = 0
	KeyU16      TypeKey = 1
	KeyU32      TypeKey = 2
	KeyU64      TypeKey = 3
	KeyI8       TypeKey = 4
	KeyI16      TypeKey = 5
	KeyI32      TypeKey = 6
	KeyI64      TypeKey = 7
	KeyF32      TypeKey = 8
	KeyF64      TypeKey = 9
	KeyBool     TypeKey = 10
	KeyBytes    TypeKey = 11
	KeyString   TypeKey = 12
	KeyDate     TypeKey = 13
	KeyTime     TypeKey = 14
	KeyTimeZone TypeKey = 15
	KeyDateTime TypeKey = 16
	KeyUUID     TypeKey = 17
)

// typeKeyNames is the discriminator registry. A duplicated key is a
// compile error ("duplicate key in map literal").
var typeKeyNames = map[TypeKey]string{
	KeyU8:       "u8",
	KeyU16:      "u16",
	KeyU32:      "u32",
	KeyU64:      "u64",
	KeyI8:       "i8",
	KeyI16:      "i16",
	KeyI32:      "i32",
	KeyI64:      "i64",
	KeyF32:      "f32",
	KeyF64:      "f64",
	KeyBool:     "bool",
	KeyBytes:    "bytes",
	KeyString:   "string",
	KeyDate:     "date",
	KeyTime:     "time",
	KeyTimeZone: "timezone",
	KeyDateTime: "datetime",
	KeyUUID:     "uuid",
}

func (k TypeKey) String() string {
	if name, ok := typeKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// Known reports whether k is a registered discriminator.
func (k TypeKey) Known() bool {
	_, ok := typeKeyNames[k]
	return ok
}

// Sizer reports the encoded size of a value.
//
// ConstSize returns (n, true) when every value of the type encodes to
// exactly n bytes, which lets callers skip size probing entirely.
type Sizer interface {
	Size() int
	ConstSize() (int, bool)
}

// Writable values serialize themselves. WriteTo must write exactly Size()
// bytes; anything else is a bug in the type.
type Writable interface {
	Sizer
	io.WriterTo
}

// Readable is implemented by T with value receivers, so the zero T stands in
// for the type's static operations:
//
//	var zero tuxobj.U32
//	v, err := zero.Decode(r)
//
// DecodeSize reports the encoded size of the next value without decoding it
// completely and leaves rs positioned where it found it. Skip advances rs
// past exactly one value.
type Readable[T any] interface {
	Sizer
	Decode(r io.Reader) (T, error)
	DecodeSize(rs io.ReadSeeker) (int, error)
	Skip(rs io.ReadSeeker) error
}

// Typed values carry a registered discriminator.
type Typed interface {
	TypeKey() TypeKey
}

// Codec is a type that can be written and read back.
type Codec[T any] interface {
	Writable
	Readable[T]
}

// TypedCodec is a Codec with a discriminator; required for Map keys and
// values.
type TypedCodec[T any] interface {
	Codec[T]
	Typed
}
