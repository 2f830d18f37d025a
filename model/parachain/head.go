package parachain

import (
	"encoding/binary"
	"fmt"
)

// HeadDataLen is the length of the canonical encoding of a HeadData.
const HeadDataLen = 8 + IdentifierLen + IdentifierLen

// HeadData is the header of a parachain block. The relay chain only ever sees
// its canonical encoding.
type HeadData struct {
	// Number is the block number, genesis is 0.
	Number uint64
	// ParentHash is the ID of the parent header.
	ParentHash Identifier
	// PostState is the digest of the state after executing the block.
	PostState Identifier
}

// Encode returns the canonical encoding of the header: number (8 bytes,
// little endian), parent hash (32 bytes), post state (32 bytes).
func (h HeadData) Encode() []byte {
	buf := make([]byte, HeadDataLen)
	binary.LittleEndian.PutUint64(buf[0:8], h.Number)
	copy(buf[8:8+IdentifierLen], h.ParentHash[:])
	copy(buf[8+IdentifierLen:], h.PostState[:])
	return buf
}

// ID returns the digest of the canonical encoding of the header.
func (h HeadData) ID() Identifier {
	return MakeID(h.Encode())
}

// DecodeHeadData decodes a canonically encoded header. Inputs of any length
// other than HeadDataLen are rejected.
func DecodeHeadData(data []byte) (HeadData, error) {
	var h HeadData
	if len(data) != HeadDataLen {
		return h, fmt.Errorf("invalid head data length (got=%d, expected=%d)", len(data), HeadDataLen)
	}
	h.Number = binary.LittleEndian.Uint64(data[0:8])
	copy(h.ParentHash[:], data[8:8+IdentifierLen])
	copy(h.PostState[:], data[8+IdentifierLen:])
	return h, nil
}

// Genesis returns the genesis header: number 0, zero parent hash, post state
// committing to state 0.
func Genesis() HeadData {
	return HeadData{
		Number:     0,
		ParentHash: ZeroID,
		PostState:  HashState(0),
	}
}
