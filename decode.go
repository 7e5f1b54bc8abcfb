package tuxobj

import (
	"fmt"
	"io"
)

// Reader gives random access to the sections of one encoded object.
//
// A Reader owns the position of its ReadSeeker: every method seeks to the
// section it needs first. It is not safe for concurrent use.
type Reader struct {
	rs     io.ReadSeeker
	header ObjectHeader
	limits Limits
}

// NewReader reads and validates the header at offset 0 of rs.
//
// By default, NewReader uses safe default size limits. Use WithReadLimits
// to change them.
func NewReader(rs io.ReadSeeker, opts ...ReadOption) (*Reader, error) {
	cfg := newReadConfig(opts)
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	h, err := ReadHeader(rs)
	if err != nil {
		return nil, err
	}
	if err := validateLimits(h, cfg.limits); err != nil {
		return nil, err
	}
	return &Reader{rs: rs, header: h, limits: cfg.limits}, nil
}

// Header returns the decoded object header.
func (r *Reader) Header() ObjectHeader { return r.header }

// Metadata returns the raw metadata section.
func (r *Reader) Metadata() ([]byte, error) {
	n, _ := r.header.Len(SectionMetadata)
	if err := SeekToSectionWithHeader(r.rs, SectionMetadata, r.header); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := readFull(r.rs, buf); err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	return buf, nil
}

// Tags decodes the tags section as StringTags.
func (r *Reader) Tags() (StringTags, error) {
	return ReadTagsAt[String](r.rs, r.header)
}

// FindTag looks key up in the tags section without decoding other values.
// A scan that runs into the content section fails with ErrInvalidHeader.
func (r *Reader) FindTag(key string) (Value, bool, error) {
	if r.header.TagsSpace() == 0 {
		return nil, false, nil
	}
	if err := SeekToSectionWithHeader(r.rs, SectionTags, r.header); err != nil {
		return nil, false, err
	}
	v, ok, err := FindTag(r.rs, String(key))
	if err != nil {
		return nil, false, err
	}
	end, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, false, err
	}
	if err := validateTagsEnd(r.header, end); err != nil {
		return nil, false, err
	}
	return v, ok, nil
}

// ReadTagsAt seeks rs to the tags section described by h and decodes it.
func ReadTagsAt[K TagKey[K]](rs io.ReadSeeker, h ObjectHeader) (Tags[K], error) {
	if h.TagsSpace() == 0 {
		return NewTags[K](), nil
	}
	if err := SeekToSectionWithHeader(rs, SectionTags, h); err != nil {
		return Tags[K]{}, err
	}
	var zero Tags[K]
	tags, err := zero.Decode(rs)
	if err != nil {
		return Tags[K]{}, err
	}
	end, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return Tags[K]{}, err
	}
	if err := validateTagsEnd(h, end); err != nil {
		return Tags[K]{}, err
	}
	return tags, nil
}

// RawContent returns a reader of the stored, still compressed, content.
func (r *Reader) RawContent() (io.Reader, error) {
	if err := SeekToSectionWithHeader(r.rs, SectionContent, r.header); err != nil {
		return nil, err
	}
	return io.LimitReader(r.rs, int64(r.header.ContentLength)), nil
}

// Content returns a reader of the decompressed content. Reading more than
// Limits.MaxContentUncompressed bytes fails with ErrLimitExceeded.
func (r *Reader) Content() (io.ReadCloser, error) {
	raw, err := r.RawContent()
	if err != nil {
		return nil, err
	}
	rc, err := r.header.Compression.NewReader(raw)
	if err != nil {
		return nil, err
	}
	return &limitedReadCloser{rc: rc, remaining: r.limits.MaxContentUncompressed}, nil
}

// ReadContent reads and decompresses the whole content section.
func (r *Reader) ReadContent() ([]byte, error) {
	raw, err := r.RawContent()
	if err != nil {
		return nil, err
	}
	stored, err := readAll(raw)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if uint64(len(stored)) != r.header.ContentLength {
		return nil, fmt.Errorf("content: %w: %w", ErrUnexpectedEOF, io.ErrUnexpectedEOF)
	}
	return r.header.Compression.Decompress(stored, r.limits.MaxContentUncompressed)
}

// Decode reads a complete object from rs.
//
// Decode returns ErrInvalidMagic if rs does not hold an object,
// ErrUnsupportedVersion for unknown versions, ErrInvalidCompression for
// unknown compression ids and ErrLimitExceeded if any limit is exceeded.
func Decode(rs io.ReadSeeker, opts ...ReadOption) (*Object, error) {
	r, err := NewReader(rs, opts...)
	if err != nil {
		return nil, err
	}
	meta, err := r.Metadata()
	if err != nil {
		return nil, err
	}
	tags, err := r.Tags()
	if err != nil {
		return nil, err
	}
	content, err := r.ReadContent()
	if err != nil {
		return nil, err
	}
	obj := &Object{Tags: tags, Content: content}
	if len(meta) > 0 {
		obj.Metadata = meta
	}
	return obj, nil
}

type limitedReadCloser struct {
	rc        io.ReadCloser
	remaining uint64
}

func (l *limitedReadCloser) Read(p []byte) (int, error) {
	if l.remaining == 0 {
		// Distinguish a stream that ends exactly at the limit.
		var probe [1]byte
		n, err := l.rc.Read(probe[:])
		if n > 0 {
			return 0, fmt.Errorf("%w: content expanded beyond limit", ErrLimitExceeded)
		}
		return 0, err
	}
	if uint64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.rc.Read(p)
	l.remaining -= uint64(n)
	return n, err
}

func (l *limitedReadCloser) Close() error { return l.rc.Close() }
