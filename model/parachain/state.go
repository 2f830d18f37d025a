package parachain

import (
	"encoding/binary"
)

// StateLen is the encoded length of a chain state value.
const StateLen = 8

// EncodeState returns the canonical encoding of a state value: 8 bytes,
// little endian.
func EncodeState(state uint64) []byte {
	buf := make([]byte, StateLen)
	binary.LittleEndian.PutUint64(buf, state)
	return buf
}

// HashState returns the digest of the canonical encoding of the state. It is
// the value committed to in HeadData.PostState.
func HashState(state uint64) Identifier {
	return MakeID(EncodeState(state))
}
