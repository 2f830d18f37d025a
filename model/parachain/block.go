package parachain

import (
	"encoding/binary"
	"fmt"
)

// BlockDataLen is the length of the canonical encoding of a BlockData.
const BlockDataLen = 16

// BlockData is the body of a parachain block. It is only kept around long
// enough to be packaged into a proof of validity.
type BlockData struct {
	// State is the state to begin from.
	State uint64
	// Add is the amount to add, wrapping at 2^64.
	Add uint64
}

// Encode returns the canonical encoding of the body: state then add, each
// 8 bytes little endian.
func (b BlockData) Encode() []byte {
	buf := make([]byte, BlockDataLen)
	binary.LittleEndian.PutUint64(buf[0:8], b.State)
	binary.LittleEndian.PutUint64(buf[8:16], b.Add)
	return buf
}

// DecodeBlockData decodes a canonically encoded body.
func DecodeBlockData(data []byte) (BlockData, error) {
	var b BlockData
	if len(data) != BlockDataLen {
		return b, fmt.Errorf("invalid block data length (got=%d, expected=%d)", len(data), BlockDataLen)
	}
	b.State = binary.LittleEndian.Uint64(data[0:8])
	b.Add = binary.LittleEndian.Uint64(data[8:16])
	return b, nil
}
