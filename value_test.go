package tuxobj

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestValueWireForm(t *testing.T) {
	values := []Value{
		String("hi"), Bytes{1, 2, 3}, Bool(false),
		U8(1), U16(2), U32(3), U64(4), I8(-1), I16(-2), I32(-3), I64(-4), F32(0.5), F64(0.25),
		Date{Year: 2024, Month: 2, Day: 29},
		Time{SecondsFromMidnight: 3600, Nanoseconds: 5},
		DateTime{Date: Date{Year: 1999, Month: 12, Day: 31}, TimeZone: TimeZone{Offset: -18000}},
		UUID(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")),
	}
	for _, v := range values {
		var buf bytes.Buffer
		n, err := WriteValue(&buf, v)
		if err != nil {
			t.Fatalf("%T: %v", v, err)
		}
		b := buf.Bytes()
		if int(n) != len(b) || len(b) != ValueSize(v) {
			t.Fatalf("%T: wrote %d (reported %d), ValueSize %d", v, len(b), n, ValueSize(v))
		}
		if b[0] != byte(v.TypeKey()) {
			t.Fatalf("%T: leading byte %d, want %d", v, b[0], v.TypeKey())
		}

		rs := bytes.NewReader(append(b, 0xEE))
		size, err := ReadValueSize(rs)
		if err != nil || size != len(b) {
			t.Fatalf("%T: ReadValueSize %d, %v", v, size, err)
		}
		if pos, _ := rs.Seek(0, io.SeekCurrent); pos != 0 {
			t.Fatalf("%T: ReadValueSize moved the reader to %d", v, pos)
		}
		if err := SkipValue(rs); err != nil {
			t.Fatal(err)
		}
		if pos, _ := rs.Seek(0, io.SeekCurrent); pos != int64(len(b)) {
			t.Fatalf("%T: SkipValue stopped at %d", v, pos)
		}

		got, err := ReadValue(bytes.NewReader(b))
		if err != nil {
			t.Fatalf("%T: ReadValue: %v", v, err)
		}
		if gb, _ := ToBytes(got); !bytes.Equal(gb, b[1:]) {
			t.Fatalf("%T: decoded as %#v", v, got)
		}
	}
}

func TestValueUnknownKey(t *testing.T) {
	for _, key := range []byte{byte(KeyTimeZone), 18, 200, 255} {
		in := []byte{key, 0, 0, 0, 0}
		_, err := ReadValue(bytes.NewReader(in))
		var ue *UnknownTypeKeyError
		if !errors.As(err, &ue) || ue.Key != key {
			t.Fatalf("key %d: expected UnknownTypeKeyError, got %v", key, err)
		}
		if _, err := ReadValueSize(bytes.NewReader(in)); !errors.Is(err, ErrUnknownTypeKey) {
			t.Fatalf("key %d: expected ErrUnknownTypeKey, got %v", key, err)
		}
		if err := SkipValue(bytes.NewReader(in)); !errors.Is(err, ErrUnknownTypeKey) {
			t.Fatalf("key %d: expected ErrUnknownTypeKey, got %v", key, err)
		}
	}
}

func TestValueInvalidPayload(t *testing.T) {
	if _, err := ReadValue(bytes.NewReader([]byte{byte(KeyBool), 3})); !errors.Is(err, ErrInvalidBool) {
		t.Fatalf("expected ErrInvalidBool, got %v", err)
	}
	if _, err := ReadValue(bytes.NewReader(nil)); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
	if _, err := WriteValue(io.Discard, nil); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestRegisterVariants_Duplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	registerVariants(variant[U8](), variant[U8]())
}

func TestValueOf(t *testing.T) {
	id := uuid.New()
	when := time.Date(2020, 5, 17, 8, 30, 0, 0, time.UTC)
	cases := []struct {
		in   any
		want Value
	}{
		{"s", String("s")},
		{[]byte{1}, Bytes{1}},
		{true, Bool(true)},
		{uint8(1), U8(1)},
		{uint16(2), U16(2)},
		{uint32(3), U32(3)},
		{uint64(4), U64(4)},
		{int8(-1), I8(-1)},
		{int16(-2), I16(-2)},
		{int32(-3), I32(-3)},
		{int64(-4), I64(-4)},
		{7, I64(7)},
		{float32(1.5), F32(1.5)},
		{2.5, F64(2.5)},
		{U32(9), U32(9)},
		{id, UUID(id)},
		{when, DateTime{Date: Date{2020, 5, 17}, Time: Time{SecondsFromMidnight: 8*3600 + 30*60}}},
	}
	for _, tc := range cases {
		got, err := ValueOf(tc.in)
		if err != nil {
			t.Fatalf("%T: %v", tc.in, err)
		}
		gb, _ := ToBytes(got)
		wb, _ := ToBytes(tc.want)
		if got.TypeKey() != tc.want.TypeKey() || !bytes.Equal(gb, wb) {
			t.Fatalf("%T: got %#v, want %#v", tc.in, got, tc.want)
		}
	}
	if _, err := ValueOf(struct{}{}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if _, err := ValueOf(time.Date(-5, 1, 1, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrOther) {
		t.Fatalf("expected ErrOther for negative year, got %v", err)
	}
}

func TestNative(t *testing.T) {
	id := uuid.New()
	when := time.Date(2021, 7, 4, 12, 0, 0, 0, time.FixedZone("", -4*3600))
	dt, err := DateTimeOf(when)
	if err != nil {
		t.Fatal(err)
	}
	if got := Native(String("x")); got != "x" {
		t.Fatalf("string: %#v", got)
	}
	if got := Native(I16(-3)); got != int16(-3) {
		t.Fatalf("i16: %#v", got)
	}
	if got := Native(Date{Year: 2021, Month: 7, Day: 4}); got != "2021-07-04" {
		t.Fatalf("date: %#v", got)
	}
	if got := Native(Time{SecondsFromMidnight: 90}); got != 90*time.Second {
		t.Fatalf("time: %#v", got)
	}
	if got, ok := Native(dt).(time.Time); !ok || !got.Equal(when) {
		t.Fatalf("datetime: %#v", got)
	}
	if got := Native(UUID(id)); got != id {
		t.Fatalf("uuid: %#v", got)
	}
	bad := Time{SecondsFromMidnight: 1 << 20}
	if got := Native(bad); got != bad {
		t.Fatalf("invalid time: %#v", got)
	}
	// Every value converted from a native converts back to it.
	for _, x := range []any{"s", true, uint8(1), uint64(9), int32(-7), float32(2.5), 3.25} {
		v, err := ValueOf(x)
		if err != nil {
			t.Fatal(err)
		}
		if got := Native(v); got != x {
			t.Fatalf("%T: got %#v", x, got)
		}
	}
}
