package caseset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how the payload of a case-set file is compressed.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionLZ4  Compression = 1
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses the String form of a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	}
	return 0, fmt.Errorf("caseset: unknown compression %q", s)
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxPayloadSize))
	return dec
}

// Blocks are [uncompressed u32][compressed u32][data]. A compressed size of
// zero means the data is stored as is.
const blockHeaderSize = 8

const (
	// maxPayloadSize bounds the uncompressed payload of a block. The size
	// field is read before any data is checked, so it caps the allocation
	// a hostile header can ask for.
	maxPayloadSize = 1 << 28

	// lz4MaxRatio is the most an LZ4 block can expand: each 255 byte run
	// costs at least one byte of input.
	lz4MaxRatio = 255
)

func compressBlock(data []byte, c Compression) ([]byte, error) {
	if len(data) > maxPayloadSize {
		return nil, fmt.Errorf("caseset: payload of %d bytes exceeds %d", len(data), maxPayloadSize)
	}
	var compressed []byte
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("caseset: lz4: %w", err)
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("caseset: unknown compression %d", c)
	}

	// Incompressible data is stored.
	if len(compressed) == 0 || len(compressed) >= len(data) {
		out := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		copy(out[blockHeaderSize:], data)
		return out, nil
	}

	out := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[blockHeaderSize:], compressed)
	return out, nil
}

var errSizeMismatch = errors.New("decompressed size mismatch")

func decompressBlock(data []byte, c Compression) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrCorrupt)
	}
	size := binary.LittleEndian.Uint32(data[0:])
	csize := binary.LittleEndian.Uint32(data[4:])
	body := data[blockHeaderSize:]

	if csize == 0 {
		if uint32(len(body)) != size {
			return nil, fmt.Errorf("%w: stored block is %d bytes, expected %d", ErrCorrupt, len(body), size)
		}
		return body, nil
	}
	if uint32(len(body)) != csize {
		return nil, fmt.Errorf("%w: compressed block is %d bytes, expected %d", ErrCorrupt, len(body), csize)
	}
	if size > maxPayloadSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds %d", ErrCorrupt, size, maxPayloadSize)
	}

	switch c {
	case CompressionLZ4:
		if uint64(size) > uint64(csize)*lz4MaxRatio {
			return nil, fmt.Errorf("%w: lz4 block of %d bytes cannot expand to %d", ErrCorrupt, csize, size)
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
		}
		if uint32(n) != size {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, errSizeMismatch)
		}
		return out, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		decoded, err := dec.DecodeAll(body, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}
		if uint32(len(decoded)) != size {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, errSizeMismatch)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: compressed block with compression %s", ErrCorrupt, c)
	}
}
