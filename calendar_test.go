package tuxobj

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCalendarLayout(t *testing.T) {
	dt := DateTime{
		Date:     Date{Year: 0x07E8, Month: 3, Day: 15},
		Time:     Time{SecondsFromMidnight: 1, Nanoseconds: 2},
		TimeZone: TimeZone{Offset: -1},
	}
	b := checkSizes(t, dt)
	want := []byte{
		0xE8, 0x07, 3, 15,
		1, 0, 0, 0, 2, 0, 0, 0,
		0xFF, 0xFF, 0xFF, 0xFF,
	}
	if !bytes.Equal(b, want) {
		t.Fatalf("want % x, got % x", want, b)
	}
	got, err := FromBytes[DateTime](b)
	if err != nil || got != dt {
		t.Fatalf("decode: %v, %v", got, err)
	}
	checkSizes(t, dt.Date)
	checkSizes(t, dt.Time)
	checkSizes(t, dt.TimeZone)

	if _, err := FromBytes[DateTime](b[:10]); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestDateTimeOf(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	in := time.Date(2024, 3, 15, 13, 45, 30, 500, zone)
	dt, err := DateTimeOf(in)
	if err != nil {
		t.Fatal(err)
	}
	want := DateTime{
		Date:     Date{Year: 2024, Month: 3, Day: 15},
		Time:     Time{SecondsFromMidnight: 13*3600 + 45*60 + 30, Nanoseconds: 500},
		TimeZone: TimeZone{Offset: 3600},
	}
	if dt != want {
		t.Fatalf("got %v, want %v", dt, want)
	}
	back, err := dt.ToTime()
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(in) {
		t.Fatalf("ToTime = %v, want %v", back, in)
	}
	if _, off := back.Zone(); off != 3600 {
		t.Fatalf("offset %d", off)
	}
}

func TestCalendarInvalid(t *testing.T) {
	var ce *CalendarError
	if _, err := (Date{Year: 2023, Month: 2, Day: 30}).In(time.UTC); !errors.As(err, &ce) || ce.Kind != "date" {
		t.Fatalf("expected date error, got %v", err)
	}
	if _, err := (Time{SecondsFromMidnight: 86400}).Duration(); !errors.As(err, &ce) || ce.Kind != "time" {
		t.Fatalf("expected time error, got %v", err)
	}
	if _, err := (Time{Nanoseconds: 1e9}).Duration(); !errors.Is(err, ErrOther) {
		t.Fatalf("expected ErrOther, got %v", err)
	}
	if _, err := (TimeZone{Offset: 86400}).Location(); !errors.As(err, &ce) || ce.Kind != "offset" {
		t.Fatalf("expected offset error, got %v", err)
	}
	if _, err := (DateTime{Date: Date{Year: 2024, Month: 13, Day: 1}}).ToTime(); !errors.Is(err, ErrOther) {
		t.Fatalf("expected ErrOther, got %v", err)
	}
	if _, err := DateOf(time.Date(70000, 1, 1, 0, 0, 0, 0, time.UTC)); !errors.As(err, &ce) || ce.Kind != "year" {
		t.Fatalf("expected year error, got %v", err)
	}
}

func TestUUID(t *testing.T) {
	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	b := checkSizes(t, UUID(id))
	if !bytes.Equal(b, id[:]) {
		t.Fatalf("uuid bytes % x", b)
	}
	got, err := FromBytes[UUID](b)
	if err != nil || got.String() != id.String() {
		t.Fatalf("decode: %v, %v", got, err)
	}
	if a, c := NewUUID(), NewUUID(); a == c {
		t.Fatal("NewUUID repeated")
	}
}
