package tuxobj

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestCompressionDescriptor(t *testing.T) {
	cases := []struct {
		c    Compression
		want []byte
	}{
		{NoCompression(), []byte{0, 0, 0, 0, 0}},
		{Zstd(3), []byte{1, 3, 0, 0, 0}},
		{Zstd(-1), []byte{1, 0xFF, 0xFF, 0xFF, 0xFF}},
		{Gzip(9), []byte{2, 9, 0, 0, 0}},
		{LZ4(4), []byte{3, 4, 0, 0, 0}},
		{Brotli(0x0102), []byte{4, 2, 1, 0, 0}},
	}
	for _, tc := range cases {
		b, err := ToBytes(tc.c)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b, tc.want) {
			t.Fatalf("%v: want % x, got % x", tc.c, tc.want, b)
		}
	}

	if _, err := FromBytes[Compression]([]byte{7, 0, 0, 0, 0}); !errors.Is(err, ErrInvalidCompression) {
		t.Fatalf("expected ErrInvalidCompression, got %v", err)
	}
	if _, err := FromBytes[Compression]([]byte{1, 0}); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
	if _, err := (Compression{Type: 7}).WriteTo(io.Discard); !errors.Is(err, ErrInvalidCompression) {
		t.Fatalf("expected ErrInvalidCompression, got %v", err)
	}
}

func TestParseCompressionType(t *testing.T) {
	for c := CompNone; c <= CompBrotli; c++ {
		got, err := ParseCompressionType(c.String())
		if err != nil || got != c {
			t.Fatalf("%v: got %v, %v", c, got, err)
		}
	}
	if _, err := ParseCompressionType("zip"); !errors.Is(err, ErrInvalidCompression) {
		t.Fatalf("expected ErrInvalidCompression, got %v", err)
	}
	if CompressionType(99).String() != "unknown(99)" {
		t.Fatal("expected unknown(99)")
	}
	if Zstd(-2).String() != "zstd(-2)" || Gzip(6).String() != "gzip(6)" || NoCompression().String() != "none" {
		t.Fatal("unexpected compression names")
	}
}

func TestDecompressionExpansionGuards(t *testing.T) {
	in := []byte("hello world")
	for _, c := range []Compression{NoCompression(), Zstd(0), Gzip(0), LZ4(0), Brotli(0)} {
		packed, err := c.Compress(in)
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		if _, err := c.Decompress(packed, 1); !errors.Is(err, ErrLimitExceeded) {
			t.Fatalf("%v: expected ErrLimitExceeded, got %v", c, err)
		}
		out, err := c.Decompress(packed, uint64(len(in)))
		if err != nil || !bytes.Equal(out, in) {
			t.Fatalf("%v: got %q, %v", c, out, err)
		}
	}
}

func TestDecompress_UnboundedLimit(t *testing.T) {
	in := []byte("hello world, hello world")
	for _, c := range []Compression{NoCompression(), Zstd(0), Gzip(0), LZ4(0), Brotli(0)} {
		packed, err := c.Compress(in)
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		for _, max := range []uint64{math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64} {
			out, err := c.Decompress(packed, max)
			if err != nil || !bytes.Equal(out, in) {
				t.Fatalf("%v max=%d: got %q, %v", c, max, out, err)
			}
		}
	}
}

func TestCompressLevels(t *testing.T) {
	bad := []Compression{LZ4(10), Brotli(12), Gzip(20)}
	for _, c := range bad {
		if _, err := c.Compress([]byte("x")); !errors.Is(err, ErrInvalidCompression) {
			t.Fatalf("%v: expected ErrInvalidCompression, got %v", c, err)
		}
	}
	unknown := Compression{Type: 9}
	if _, err := unknown.Compress([]byte("x")); !errors.Is(err, ErrInvalidCompression) {
		t.Fatalf("expected ErrInvalidCompression, got %v", err)
	}
	if _, err := unknown.Decompress([]byte("x"), 10); !errors.Is(err, ErrInvalidCompression) {
		t.Fatalf("expected ErrInvalidCompression, got %v", err)
	}
}

func TestDecompressionCorruptStreams(t *testing.T) {
	cases := map[string]Compression{
		"notzstd": Zstd(0),
		"notgzip": Gzip(0),
		"notlz4":  LZ4(0),
		"notbr":   Brotli(0),
	}
	for in, c := range cases {
		if _, err := c.Decompress([]byte(in), 100); err == nil {
			t.Fatalf("%v: expected error", c)
		}
	}
}

func TestCompressHelpers_ErrorPaths(t *testing.T) {
	// gzip write error
	if err := gzipCompressTo(errWriter{}, bytes.Repeat([]byte("x"), 1<<20), 0); err == nil {
		t.Fatal("expected error")
	}
	// gzip Close error via injection
	origGzipClose := gzipClose
	gzipClose = func(_ *gzip.Writer) error { return io.ErrClosedPipe }
	if _, err := gzipCompress([]byte("x"), 0); err == nil {
		gzipClose = origGzipClose
		t.Fatal("expected error")
	}
	gzipClose = origGzipClose

	// lz4 write error
	if err := lz4CompressTo(errWriter{}, []byte("x"), 0); err == nil {
		t.Fatal("expected error")
	}
	// lz4 Close error via injection
	origLZ4Close := lz4Close
	lz4Close = func(_ *lz4.Writer) error { return io.ErrClosedPipe }
	if _, err := lz4Compress([]byte("x"), 0); err == nil {
		lz4Close = origLZ4Close
		t.Fatal("expected error")
	}
	lz4Close = origLZ4Close

	// brotli write error
	origBrotliWrite := brotliWrite
	brotliWrite = func(_ *brotli.Writer, _ []byte) (int, error) { return 0, io.ErrClosedPipe }
	if err := brotliCompressTo(io.Discard, []byte("x"), 0); err == nil {
		brotliWrite = origBrotliWrite
		t.Fatal("expected error")
	}
	brotliWrite = origBrotliWrite
	// brotli Close error via injection
	origBrotliClose := brotliClose
	brotliClose = func(_ *brotli.Writer) error { return io.ErrClosedPipe }
	if _, err := brotliCompress([]byte("x"), 0); err == nil {
		brotliClose = origBrotliClose
		t.Fatal("expected error")
	}
	brotliClose = origBrotliClose
}

func TestDecompress_ReadAllError(t *testing.T) {
	orig := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrClosedPipe }
	defer func() { readAll = orig }()
	if _, err := NoCompression().Decompress([]byte("anything"), 10); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected io.ErrClosedPipe, got %v", err)
	}
}

func TestZstdConstructorInjection(t *testing.T) {
	origW := newZstdWriter
	origR := newZstdReader
	defer func() {
		newZstdWriter = origW
		newZstdReader = origR
	}()

	newZstdWriter = func(int32) (*zstd.Encoder, error) { return nil, io.ErrClosedPipe }
	if _, err := Zstd(0).Compress([]byte("x")); err == nil {
		t.Fatal("expected error")
	}

	newZstdWriter = origW
	newZstdReader = func(io.Reader) (*zstd.Decoder, error) { return nil, io.ErrClosedPipe }
	if _, err := Zstd(0).Decompress([]byte("x"), 10); err == nil {
		t.Fatal("expected error")
	}
	if _, err := Zstd(0).NewReader(bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error")
	}
}
