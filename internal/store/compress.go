package store

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// The compression transform wrapped around encoded level bytes. Pack
// and Unpack are exact inverses; everything between them is opaque to
// the codec and the stores.

// Pack compresses a payload at the given gzip level.
func Pack(data []byte, compressionLevel int) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, compressionLevel)
	if err != nil {
		return nil, fmt.Errorf("compression level %d: %w", compressionLevel, err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("compress level data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress level data: %w", err)
	}
	return buf.Bytes(), nil
}

// Unpack decompresses a payload produced by Pack.
func Unpack(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress level data: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress level data: %w", err)
	}
	return out, nil
}
