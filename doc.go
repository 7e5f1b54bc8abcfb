// Package tuxobj implements the TUX object format: a compact, self-describing
// binary encoding for typed values and a single-file object layout built on
// top of it.
//
// # Values
//
// Every storable type implements [Codec]: it reports its encoded size, writes
// itself to an io.Writer and reads itself back. Read-side operations are
// methods on the zero value, so generic code can decode a T without having
// one:
//
//	var zero tuxobj.List[tuxobj.String]
//	names, err := zero.Decode(r)
//
// Scalars (U8..U64, I8..I64, F32, F64, Bool) are little-endian and fixed
// size. String and Bytes carry a 2-byte length prefix, so no single value
// exceeds [MaxLen] bytes. Containers ([List], [Set], [Optional], [Map])
// compose them. A [Value] is the closed union of scalar types and is written
// with a one-byte [TypeKey] in front, which is what makes [Tags]
// self-describing.
//
// # Object Layout
//
// An object is:
//   - A 32-byte [ObjectHeader] with the magic "TUX", the version, the
//     content compression and the section offsets
//   - Application-defined metadata bytes
//   - A tag map ([StringTags]), optionally followed by zero padding
//   - The content, compressed with zstd, gzip, LZ4, Brotli or not at all
//
// # Basic Usage
//
// To write an object:
//
//	tags := tuxobj.NewTags[tuxobj.String]()
//	tags.Insert("title", tuxobj.String("report"))
//	obj := &tuxobj.Object{Tags: tags, Content: data}
//	err := tuxobj.Encode(f, obj, tuxobj.WithCompression(tuxobj.Zstd(3)))
//
// To read one back, either whole:
//
//	obj, err := tuxobj.Decode(f)
//
// or section by section, without touching the content:
//
//	r, err := tuxobj.NewReader(f)
//	title, ok, err := r.FindTag("title")
//
// # Limits
//
// Decoding validates every header offset and enforces configurable [Limits]
// on metadata, stored content and decompressed content, so a hostile object
// cannot force large allocations.
package tuxobj
