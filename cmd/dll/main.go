// Package main provides C-compatible exports for the tuxobj library.
// Build with: go build -buildmode=c-shared -o tuxobj.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} TuxResult;
*/
import "C"

import (
	"bytes"
	"fmt"
	"strings"
	"unsafe"

	"github.com/goccy/go-json"

	"github.com/logicossoftware/go-tuxobj"
)

func main() {}

// TuxVersion returns the object format version supported by this library.
//
//export TuxVersion
func TuxVersion() C.uint8_t {
	return C.uint8_t(tuxobj.CurrentVersion)
}

// TuxFreeResult frees memory allocated by other Tux functions.
// Must be called to avoid memory leaks.
//
//export TuxFreeResult
func TuxFreeResult(result C.TuxResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// TuxFreeString frees a C string allocated by Go.
//
//export TuxFreeString
func TuxFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func makeResult(data []byte) C.TuxResult {
	var result C.TuxResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

func makeError(err error) C.TuxResult {
	var result C.TuxResult
	result.error = C.CString(err.Error())
	return result
}

func goBytes(p *C.char, n C.int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(p), n)
}

// TuxEncode encodes an object.
// Parameters:
//   - metadata, metadataLen: opaque metadata bytes (can be NULL)
//   - tagsJSON: JSON object of tag values (can be NULL); strings, booleans
//     and numbers map to String, Bool and I64 or F64
//   - content, contentLen: content bytes
//   - compression: 0=None, 1=Zstd, 2=Gzip, 3=LZ4, 4=Brotli
//   - level: compression level, 0 for the algorithm default
//
// Returns TuxResult with encoded data or error. Call TuxFreeResult when done.
//
//export TuxEncode
func TuxEncode(
	metadata *C.char,
	metadataLen C.int,
	tagsJSON *C.char,
	content *C.char,
	contentLen C.int,
	compression C.uint8_t,
	level C.int32_t,
) C.TuxResult {
	obj := &tuxobj.Object{
		Metadata: goBytes(metadata, metadataLen),
		Content:  goBytes(content, contentLen),
	}
	if tagsJSON != nil {
		tags, err := tagsFromJSON(C.GoString(tagsJSON))
		if err != nil {
			return makeError(err)
		}
		obj.Tags = tags
	}

	comp := tuxobj.Compression{Type: tuxobj.CompressionType(compression), Param: uint32(int32(level))}
	var buf bytes.Buffer
	if err := tuxobj.Encode(&buf, obj, tuxobj.WithCompression(comp)); err != nil {
		return makeError(err)
	}
	return makeResult(buf.Bytes())
}

func tagsFromJSON(s string) (tuxobj.StringTags, error) {
	tags := tuxobj.NewTags[tuxobj.String]()
	if strings.TrimSpace(s) == "" {
		return tags, nil
	}
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return tags, fmt.Errorf("tags json: %w", err)
	}
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			tags.Insert(tuxobj.String(k), tuxobj.String(v))
		case bool:
			tags.Insert(tuxobj.String(k), tuxobj.Bool(v))
		case json.Number:
			if i, err := v.Int64(); err == nil {
				tags.Insert(tuxobj.String(k), tuxobj.I64(i))
			} else if f, err := v.Float64(); err == nil {
				tags.Insert(tuxobj.String(k), tuxobj.F64(f))
			} else {
				return tags, fmt.Errorf("tag %q: %w", k, err)
			}
		default:
			return tags, fmt.Errorf("tag %q: unsupported JSON value %T", k, v)
		}
	}
	return tags, nil
}

type tagJSON struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// TuxDecode reads the header and tags of an object and returns them as JSON.
// The content is not decompressed.
// Parameters:
//   - data: pointer to object bytes
//   - dataLen: length of the data
//
// Returns TuxResult with a JSON string or error. Call TuxFreeResult when done.
//
//export TuxDecode
func TuxDecode(data *C.char, dataLen C.int) C.TuxResult {
	r, err := tuxobj.NewReader(bytes.NewReader(goBytes(data, dataLen)))
	if err != nil {
		return makeError(err)
	}
	tags, err := r.Tags()
	if err != nil {
		return makeError(err)
	}
	meta, err := r.Metadata()
	if err != nil {
		return makeError(err)
	}

	h := r.Header()
	out := map[string]any{
		"version":       h.Version,
		"compression":   h.Compression.String(),
		"flags":         h.Flags,
		"metadataLen":   len(meta),
		"tagsStart":     h.TagsStart,
		"contentStart":  h.ContentStart,
		"contentLength": h.ContentLength,
	}
	tagMap := make(map[string]tagJSON, tags.Len())
	for k, v := range tags.All() {
		tagMap[string(k)] = tagJSON{Type: v.TypeKey().String(), Value: tuxobj.Native(v)}
	}
	out["tags"] = tagMap

	b, err := json.Marshal(out)
	if err != nil {
		return makeError(err)
	}
	return makeResult(b)
}

// TuxGetContent returns the decompressed content of an object.
//
//export TuxGetContent
func TuxGetContent(data *C.char, dataLen C.int) C.TuxResult {
	r, err := tuxobj.NewReader(bytes.NewReader(goBytes(data, dataLen)))
	if err != nil {
		return makeError(err)
	}
	content, err := r.ReadContent()
	if err != nil {
		return makeError(err)
	}
	return makeResult(content)
}

// TuxFindTag looks up a single tag without decoding the others and returns
// it as JSON ({"type":...,"value":...}).
//
//export TuxFindTag
func TuxFindTag(data *C.char, dataLen C.int, key *C.char) C.TuxResult {
	r, err := tuxobj.NewReader(bytes.NewReader(goBytes(data, dataLen)))
	if err != nil {
		return makeError(err)
	}
	k := C.GoString(key)
	v, ok, err := r.FindTag(k)
	if err != nil {
		return makeError(err)
	}
	if !ok {
		return makeError(fmt.Errorf("tag not found: %s", k))
	}
	b, err := json.Marshal(tagJSON{Type: v.TypeKey().String(), Value: tuxobj.Native(v)})
	if err != nil {
		return makeError(err)
	}
	return makeResult(b)
}

// TuxValidate decodes an entire object.
// Returns NULL on success, or an error message string on failure.
// Call TuxFreeString on the result if non-NULL.
//
//export TuxValidate
func TuxValidate(data *C.char, dataLen C.int) *C.char {
	if _, err := tuxobj.Decode(bytes.NewReader(goBytes(data, dataLen))); err != nil {
		return C.CString(err.Error())
	}
	return nil
}

// TuxGetTagCount returns the number of tags in an object, or -1 on error.
//
//export TuxGetTagCount
func TuxGetTagCount(data *C.char, dataLen C.int) C.int {
	r, err := tuxobj.NewReader(bytes.NewReader(goBytes(data, dataLen)))
	if err != nil {
		return -1
	}
	tags, err := r.Tags()
	if err != nil {
		return -1
	}
	return C.int(tags.Len())
}
