package tuxobj

import (
	"fmt"
	"io"
	"math"
)

// Object is the logical content of an encoded object.
//
// Metadata is application-defined and stored verbatim between the header
// and the tags. Content is stored after the tags, compressed as configured.
type Object struct {
	Metadata []byte
	Tags     StringTags
	Content  []byte
}

// Function variables for testing injection.
var (
	compressContent = func(c Compression, content []byte) ([]byte, error) { return c.Compress(content) }
)

// Encode writes obj to w as a single object.
//
// Sections are written in file order: the header, the metadata, the tags,
// any padding requested with WithTagsPadding, then the content. w only
// needs to be an io.Writer; every offset is computed before the header is
// written.
//
// By default, Encode compresses the content with zstd (see WithCompression)
// and enforces the default Limits.
func Encode(w io.Writer, obj *Object, opts ...WriteOption) error {
	cfg := writeConfig{
		limits:      defaultLimits(),
		compression: Zstd(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	if err := validateObject(obj, cfg); err != nil {
		return err
	}

	tags, err := ToBytes(obj.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	content, err := compressContent(cfg.compression, obj.Content)
	if err != nil {
		return fmt.Errorf("compress content: %w", err)
	}
	if uint64(len(content)) > cfg.limits.MaxContentLen {
		return fmt.Errorf("%w: stored content is %d bytes", ErrLimitExceeded, len(content))
	}

	tagsStart := HeaderSize + len(obj.Metadata)
	contentStart := uint64(tagsStart) + uint64(len(tags)) + uint64(cfg.tagsPadding)
	if contentStart > math.MaxUint32 {
		return fmt.Errorf("%w: content would start at %d", ErrLimitExceeded, contentStart)
	}

	h := ObjectHeader{
		Version:       CurrentVersion,
		Compression:   cfg.compression,
		TagsStart:     uint16(tagsStart),
		ContentStart:  uint32(contentStart),
		ContentLength: uint64(len(content)),
		Flags:         cfg.flags,
	}
	if _, err := h.WriteTo(w); err != nil {
		return err
	}
	if len(obj.Metadata) > 0 {
		if _, err := w.Write(obj.Metadata); err != nil {
			return err
		}
	}
	if _, err := w.Write(tags); err != nil {
		return err
	}
	if cfg.tagsPadding > 0 {
		if _, err := w.Write(make([]byte, cfg.tagsPadding)); err != nil {
			return err
		}
	}
	_, err = w.Write(content)
	return err
}
