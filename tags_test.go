package tuxobj

import (
	"bytes"
	"errors"
	"testing"
)

func TestTagsSize(t *testing.T) {
	tags := NewTags[String]()
	tags.Insert("tag1", String("value1"))
	tags.Insert("tag2", String("value2"))
	// count + 2 * (key(4+2) + type key(1) + value(6+2))
	const want = 2 + 2*(6+1+8)
	if tags.Size() != want {
		t.Fatalf("Size = %d, want %d", tags.Size(), want)
	}
	checkSizes(t, tags)
	checkSizes(t, NewTags[String]())
	var zero StringTags
	if b := checkSizes(t, zero); !bytes.Equal(b, []byte{0, 0}) {
		t.Fatalf("zero tags % x", b)
	}
}

func TestTagsInsertRemove(t *testing.T) {
	var tags StringTags
	if _, ok := tags.Insert("a", U8(1)); ok {
		t.Fatal("first insert reported a previous value")
	}
	prev, ok := tags.Insert("a", U8(2))
	if !ok || prev != U8(1) {
		t.Fatalf("replace: %#v %v", prev, ok)
	}
	if v, ok := tags.Get("a"); !ok || v != U8(2) {
		t.Fatalf("get: %#v %v", v, ok)
	}
	if prev, ok := tags.Insert("a", nil); !ok || prev != U8(2) || tags.Len() != 0 {
		t.Fatalf("nil insert: %#v %v len %d", prev, ok, tags.Len())
	}
	if _, ok := tags.Remove("missing"); ok {
		t.Fatal("removed a missing key")
	}
	if !tags.IsEmpty() {
		t.Fatal("expected empty")
	}
}

func TestTagsMixedValues(t *testing.T) {
	tags := NewTags[String]()
	tags.Insert("name", String("tux"))
	tags.Insert("size", U64(1<<40))
	tags.Insert("ok", Bool(true))
	tags.Insert("id", NewUUID())
	tags.Insert("blob", Bytes{0, 1, 2})
	b := checkSizes(t, tags)

	got, err := FromBytes[StringTags](b)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != tags.Len() {
		t.Fatalf("len %d", got.Len())
	}
	for k, v := range tags.All() {
		gv, ok := got.Get(k)
		if !ok {
			t.Fatalf("missing %q", k)
		}
		wb, _ := ToBytes(v)
		gb, _ := ToBytes(gv)
		if gv.TypeKey() != v.TypeKey() || !bytes.Equal(wb, gb) {
			t.Fatalf("%q: got %#v, want %#v", k, gv, v)
		}
	}
}

func TestFindTag(t *testing.T) {
	tags := NewTags[String]()
	tags.Insert("a", String("alpha"))
	tags.Insert("b", Bytes{})
	tags.Insert("c", I32(-9))
	b, err := ToBytes(tags)
	if err != nil {
		t.Fatal(err)
	}

	n, err := ReadTagCount(bytes.NewReader(b))
	if err != nil || n != 3 {
		t.Fatalf("count %d, %v", n, err)
	}
	v, ok, err := FindTag(bytes.NewReader(b), String("c"))
	if err != nil || !ok || v != I32(-9) {
		t.Fatalf("c: %#v %v %v", v, ok, err)
	}
	if _, ok, err := FindTag(bytes.NewReader(b), String("zz")); err != nil || ok {
		t.Fatalf("zz: %v %v", ok, err)
	}

	// A corrupt value before the match is reported.
	bad := []byte{2, 0, 1, 0, 'a', 250, 1, 0, 'c', byte(KeyU8), 1}
	if _, _, err := FindTag(bytes.NewReader(bad), String("c")); !errors.Is(err, ErrUnknownTypeKey) {
		t.Fatalf("expected ErrUnknownTypeKey, got %v", err)
	}
	// A value that declares more bytes than remain is not skipped silently.
	short := []byte{1, 0, 1, 0, 'a', byte(KeyString), 100, 0, 'x'}
	if _, ok, err := FindTag(bytes.NewReader(short), String("other")); !errors.Is(err, ErrUnexpectedEOF) || ok {
		t.Fatalf("expected ErrUnexpectedEOF, got %v %v", ok, err)
	}
	v, ok, err = FindTag(bytes.NewReader(bad[:5]), String("a"))
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %#v %v %v", v, ok, err)
	}
}
