package collation

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/addchain/collator/model/parachain"
)

// MaxPoVSize bounds the decompressed size of a proof of validity.
const MaxPoVSize = 5 * 1024 * 1024

// compressedPrefix marks a zstd-compressed PoV payload. Payloads without it
// are raw.
var compressedPrefix = []byte{0x52, 0xbc, 0x53, 0x76, 0x46, 0xdb, 0x8e, 0x05}

// ErrPoVTooLarge is returned when a payload exceeds MaxPoVSize, compressed or not.
var ErrPoVTooLarge = errors.New("proof of validity exceeds size limit")

var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxPoVSize), zstd.WithDecoderConcurrency(0))
)

// PoV is a proof of validity: the payload validators need in order to
// re-execute the block. For this chain it is the encoded BlockData, possibly
// compressed.
type PoV struct {
	BlockData []byte
}

// Hash returns the digest of the payload as transmitted. Seconded
// statements refer to a collation by this value.
func (p PoV) Hash() parachain.Identifier {
	return parachain.MakeID(p.BlockData)
}

// IsCompressed reports whether the payload carries the compression prefix.
func (p PoV) IsCompressed() bool {
	return bytes.HasPrefix(p.BlockData, compressedPrefix)
}

// CompressPoV compresses the payload with zstd and prefixes it so that
// DecompressPoV can tell it apart from a raw payload.
func CompressPoV(pov PoV) (PoV, error) {
	if len(pov.BlockData) > MaxPoVSize {
		return PoV{}, ErrPoVTooLarge
	}
	compressed := make([]byte, 0, len(compressedPrefix)+len(pov.BlockData))
	compressed = append(compressed, compressedPrefix...)
	compressed = encoder.EncodeAll(pov.BlockData, compressed)
	return PoV{BlockData: compressed}, nil
}

// MaybeCompressPoV compresses the payload and keeps the result only if it is
// smaller than the raw payload.
func MaybeCompressPoV(pov PoV) (PoV, error) {
	compressed, err := CompressPoV(pov)
	if err != nil {
		return PoV{}, err
	}
	if len(compressed.BlockData) >= len(pov.BlockData) {
		return pov, nil
	}
	return compressed, nil
}

// DecompressPoV returns the raw payload. Raw payloads are returned as is.
func DecompressPoV(pov PoV) (PoV, error) {
	if !pov.IsCompressed() {
		if len(pov.BlockData) > MaxPoVSize {
			return PoV{}, ErrPoVTooLarge
		}
		return pov, nil
	}
	raw, err := decoder.DecodeAll(pov.BlockData[len(compressedPrefix):], nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return PoV{}, ErrPoVTooLarge
		}
		return PoV{}, fmt.Errorf("could not decompress proof of validity: %w", err)
	}
	if len(raw) > MaxPoVSize {
		return PoV{}, ErrPoVTooLarge
	}
	return PoV{BlockData: raw}, nil
}
