package tuxobj

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType is the algorithm id stored in the first byte of a
// compression descriptor.
type CompressionType uint8

const (
	CompNone   CompressionType = 0
	CompZstd   CompressionType = 1
	CompGzip   CompressionType = 2
	CompLZ4    CompressionType = 3
	CompBrotli CompressionType = 4
)

// CompressionSize is the encoded size of every compression descriptor.
const CompressionSize = 5

func (c CompressionType) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZstd:
		return "zstd"
	case CompGzip:
		return "gzip"
	case CompLZ4:
		return "lz4"
	case CompBrotli:
		return "brotli"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompressionType parses the String form of a compression type.
func ParseCompressionType(name string) (CompressionType, error) {
	for c := CompNone; c <= CompBrotli; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCompression, name)
}

func (c CompressionType) valid() bool { return c <= CompBrotli }

// Compression describes how an object's content is compressed: an
// algorithm id and a 4-byte little-endian parameter. The parameter is the
// signed level for zstd, the level for gzip and lz4, and the quality for
// brotli. It is always written as zero for CompNone.
//
// Zero parameters select the algorithm's default level.
type Compression struct {
	Type  CompressionType
	Param uint32
}

func NoCompression() Compression { return Compression{} }

func Zstd(level int32) Compression { return Compression{Type: CompZstd, Param: uint32(level)} }

func Gzip(level uint32) Compression { return Compression{Type: CompGzip, Param: level} }

func LZ4(level uint32) Compression { return Compression{Type: CompLZ4, Param: level} }

func Brotli(quality uint32) Compression { return Compression{Type: CompBrotli, Param: quality} }

// ZstdLevel returns Param as the signed zstd level.
func (c Compression) ZstdLevel() int32 { return int32(c.Param) }

func (c Compression) String() string {
	switch c.Type {
	case CompNone:
		return "none"
	case CompZstd:
		return fmt.Sprintf("zstd(%d)", c.ZstdLevel())
	default:
		return fmt.Sprintf("%v(%d)", c.Type, c.Param)
	}
}

func (Compression) Size() int { return CompressionSize }

func (Compression) ConstSize() (int, bool) { return CompressionSize, true }

func (Compression) DecodeSize(io.ReadSeeker) (int, error) { return CompressionSize, nil }

func (Compression) Skip(rs io.ReadSeeker) error { return skipN(rs, CompressionSize) }

func (c Compression) WriteTo(w io.Writer) (int64, error) {
	if !c.Type.valid() {
		return 0, fmt.Errorf("%w %d", ErrInvalidCompression, uint8(c.Type))
	}
	var buf [CompressionSize]byte
	c.put(buf[:])
	return writeBytes(w, buf[:])
}

func (Compression) Decode(r io.Reader) (Compression, error) {
	var buf [CompressionSize]byte
	if err := readFull(r, buf[:]); err != nil {
		return Compression{}, err
	}
	return parseCompression(buf[:])
}

func (c Compression) put(b []byte) {
	b[0] = byte(c.Type)
	if c.Type == CompNone {
		binary.LittleEndian.PutUint32(b[1:5], 0)
		return
	}
	binary.LittleEndian.PutUint32(b[1:5], c.Param)
}

// parseCompression decodes the 5-byte descriptor at the front of b.
func parseCompression(b []byte) (Compression, error) {
	if len(b) < CompressionSize {
		return Compression{}, ErrUnexpectedEOF
	}
	c := Compression{Type: CompressionType(b[0])}
	if !c.Type.valid() {
		return Compression{}, fmt.Errorf("%w %d", ErrInvalidCompression, b[0])
	}
	if c.Type != CompNone {
		c.Param = binary.LittleEndian.Uint32(b[1:5])
	}
	return c, nil
}

// Function variables for testing injection.
var (
	newZstdWriter = func(level int32) (*zstd.Encoder, error) {
		opts := []zstd.EOption{}
		if level != 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(int(level))))
		}
		return zstd.NewWriter(nil, opts...)
	}
	newZstdReader = func(r io.Reader) (*zstd.Decoder, error) { return zstd.NewReader(r) }
	gzipClose     = func(w *gzip.Writer) error { return w.Close() }
	lz4Close      = func(w *lz4.Writer) error { return w.Close() }
	brotliClose   = func(w *brotli.Writer) error { return w.Close() }
	brotliWrite   = func(w *brotli.Writer, p []byte) (int, error) { return w.Write(p) }
	readAll       = io.ReadAll
)

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// Compress compresses content with c.
func (c Compression) Compress(content []byte) ([]byte, error) {
	switch c.Type {
	case CompNone:
		return content, nil
	case CompZstd:
		return zstdCompress(content, c.ZstdLevel())
	case CompGzip:
		return gzipCompress(content, c.Param)
	case CompLZ4:
		return lz4Compress(content, c.Param)
	case CompBrotli:
		return brotliCompress(content, c.Param)
	default:
		return nil, fmt.Errorf("%w %d", ErrInvalidCompression, uint8(c.Type))
	}
}

// NewReader returns a reader of the decompressed form of r.
func (c Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c.Type {
	case CompNone:
		return io.NopCloser(r), nil
	case CompZstd:
		d, err := newZstdReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case CompGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CompLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w %d", ErrInvalidCompression, uint8(c.Type))
	}
}

// Decompress reverses Compress. Output beyond max bytes is rejected with
// ErrLimitExceeded.
func (c Compression) Decompress(content []byte, max uint64) ([]byte, error) {
	rc, err := c.NewReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	lim := int64(math.MaxInt64)
	if max < math.MaxInt64 {
		lim = int64(max) + 1
	}
	out, err := readAll(io.LimitReader(rc, lim))
	if err != nil {
		return nil, fmt.Errorf("%v decompress: %w", c.Type, err)
	}
	if uint64(len(out)) > max {
		return nil, fmt.Errorf("%w: %v content expanded beyond %d bytes", ErrLimitExceeded, c.Type, max)
	}
	return out, nil
}

// zstdCompress compresses in using the Zstandard algorithm.
func zstdCompress(in []byte, level int32) ([]byte, error) {
	enc, err := newZstdWriter(level)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

// gzipCompress compresses in as a single gzip member.
func gzipCompress(in []byte, level uint32) ([]byte, error) {
	var buf bytes.Buffer
	if err := gzipCompressTo(&buf, in, level); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gzipCompressTo(w io.Writer, in []byte, level uint32) error {
	l := gzip.DefaultCompression
	if level != 0 {
		l = int(level)
	}
	zw, err := gzip.NewWriterLevel(w, l)
	if err != nil {
		return fmt.Errorf("%w: gzip level %d: %v", ErrInvalidCompression, level, err)
	}
	if _, err := zw.Write(in); err != nil {
		_ = gzipClose(zw)
		return err
	}
	return gzipClose(zw)
}

// lz4Compress compresses in using the LZ4 frame format.
func lz4Compress(in []byte, level uint32) ([]byte, error) {
	var buf bytes.Buffer
	if err := lz4CompressTo(&buf, in, level); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lz4CompressTo(w io.Writer, in []byte, level uint32) error {
	if level >= uint32(len(lz4Levels)) {
		return fmt.Errorf("%w: lz4 level %d", ErrInvalidCompression, level)
	}
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
		return err
	}
	if _, err := zw.Write(in); err != nil {
		_ = lz4Close(zw)
		return err
	}
	return lz4Close(zw)
}

// brotliCompress compresses in using the Brotli algorithm.
func brotliCompress(in []byte, quality uint32) ([]byte, error) {
	var buf bytes.Buffer
	if err := brotliCompressTo(&buf, in, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliCompressTo(w io.Writer, in []byte, quality uint32) error {
	q := brotli.DefaultCompression
	if quality != 0 {
		q = int(quality)
	}
	if q > brotli.BestCompression {
		return fmt.Errorf("%w: brotli quality %d", ErrInvalidCompression, quality)
	}
	bw := brotli.NewWriterLevel(w, q)
	if _, err := brotliWrite(bw, in); err != nil {
		_ = brotliClose(bw)
		return err
	}
	return brotliClose(bw)
}
