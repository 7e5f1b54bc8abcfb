package tuxobj

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Date is a calendar date with no validation beyond field widths.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

func (d Date) WriteTo(w io.Writer) (int64, error) {
	n, err := U16(d.Year).WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := writeBytes(w, []byte{d.Month, d.Day})
	return n + m, err
}

func (Date) Decode(r io.Reader) (Date, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return Date{}, err
	}
	return Date{Year: binary.LittleEndian.Uint16(buf[:2]), Month: buf[2], Day: buf[3]}, nil
}

// Time is a time of day.
type Time struct {
	SecondsFromMidnight uint32
	Nanoseconds         uint32
}

func (t Time) WriteTo(w io.Writer) (int64, error) {
	n, err := U32(t.SecondsFromMidnight).WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := U32(t.Nanoseconds).WriteTo(w)
	return n + m, err
}

func (Time) Decode(r io.Reader) (Time, error) {
	secs, err := U32(0).Decode(r)
	if err != nil {
		return Time{}, err
	}
	nanos, err := U32(0).Decode(r)
	if err != nil {
		return Time{}, err
	}
	return Time{SecondsFromMidnight: uint32(secs), Nanoseconds: uint32(nanos)}, nil
}

// TimeZone is a fixed offset east of UTC in seconds.
type TimeZone struct {
	Offset int32
}

func (z TimeZone) WriteTo(w io.Writer) (int64, error) {
	return I32(z.Offset).WriteTo(w)
}

func (TimeZone) Decode(r io.Reader) (TimeZone, error) {
	off, err := I32(0).Decode(r)
	if err != nil {
		return TimeZone{}, err
	}
	return TimeZone{Offset: int32(off)}, nil
}

// DateTime is a Date, Time and TimeZone laid out back to back.
type DateTime struct {
	Date     Date
	Time     Time
	TimeZone TimeZone
}

func (dt DateTime) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, part := range []io.WriterTo{dt.Date, dt.Time, dt.TimeZone} {
		n, err := part.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (DateTime) Decode(r io.Reader) (DateTime, error) {
	var dt DateTime
	var err error
	if dt.Date, err = dt.Date.Decode(r); err != nil {
		return DateTime{}, err
	}
	if dt.Time, err = dt.Time.Decode(r); err != nil {
		return DateTime{}, err
	}
	if dt.TimeZone, err = dt.TimeZone.Decode(r); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d+%ds.%09d%+ds", dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.SecondsFromMidnight, dt.Time.Nanoseconds, dt.TimeZone.Offset)
}

// CalendarError reports raw calendar fields that do not form a valid
// date, time of day or offset.
type CalendarError struct {
	Kind  string
	Value any
}

func (e *CalendarError) Error() string {
	return fmt.Sprintf("%v: invalid %s %+v", ErrOther, e.Kind, e.Value)
}

func (e *CalendarError) Unwrap() error { return ErrOther }

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) (Date, error) {
	y, m, d := t.Date()
	if y < 0 || y > 0xFFFF {
		return Date{}, &CalendarError{Kind: "year", Value: y}
	}
	return Date{Year: uint16(y), Month: uint8(m), Day: uint8(d)}, nil
}

// TimeOf returns the time of day of t in t's location.
func TimeOf(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{SecondsFromMidnight: uint32(h*3600 + m*60 + s), Nanoseconds: uint32(t.Nanosecond())}
}

// TimeZoneOf returns the offset of t's location at t.
func TimeZoneOf(t time.Time) TimeZone {
	_, off := t.Zone()
	return TimeZone{Offset: int32(off)}
}

// DateTimeOf splits t into its raw parts.
func DateTimeOf(t time.Time) (DateTime, error) {
	d, err := DateOf(t)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: d, Time: TimeOf(t), TimeZone: TimeZoneOf(t)}, nil
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) (time.Time, error) {
	t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, loc)
	if y, m, day := t.Date(); y != int(d.Year) || m != time.Month(d.Month) || day != int(d.Day) {
		return time.Time{}, &CalendarError{Kind: "date", Value: d}
	}
	return t, nil
}

// Duration returns the offset of t from midnight.
func (t Time) Duration() (time.Duration, error) {
	if t.SecondsFromMidnight >= 24*60*60 || t.Nanoseconds >= 1e9 {
		return 0, &CalendarError{Kind: "time", Value: t}
	}
	return time.Duration(t.SecondsFromMidnight)*time.Second + time.Duration(t.Nanoseconds), nil
}

// Location returns a fixed zone for z.
func (z TimeZone) Location() (*time.Location, error) {
	if z.Offset <= -24*60*60 || z.Offset >= 24*60*60 {
		return nil, &CalendarError{Kind: "offset", Value: z}
	}
	return time.FixedZone("", int(z.Offset)), nil
}

// ToTime converts dt back into a time.Time in a fixed zone.
func (dt DateTime) ToTime() (time.Time, error) {
	loc, err := dt.TimeZone.Location()
	if err != nil {
		return time.Time{}, err
	}
	midnight, err := dt.Date.In(loc)
	if err != nil {
		return time.Time{}, err
	}
	d, err := dt.Time.Duration()
	if err != nil {
		return time.Time{}, err
	}
	return midnight.Add(d), nil
}
