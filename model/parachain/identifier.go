package parachain

import (
	"encoding/hex"
	"fmt"

	"lukechampine.com/blake3"
)

// IdentifierLen is the byte length of every digest used by the chain.
const IdentifierLen = 32

// Identifier is a 32-byte BLAKE3 digest. It identifies heads, PoVs, relay
// parents and validation code.
type Identifier [IdentifierLen]byte

// ZeroID is the lowest value in the 32-byte ID space.
var ZeroID = Identifier{}

// MakeID hashes the given canonical encoding into an Identifier.
func MakeID(data []byte) Identifier {
	return blake3.Sum256(data)
}

// HexStringToIdentifier converts a hex string (without 0x prefix) to an Identifier.
func HexStringToIdentifier(hexString string) (Identifier, error) {
	var identifier Identifier
	if len(hexString) != IdentifierLen*2 {
		return identifier, fmt.Errorf("malformed input, expected %d hex chars, got %d", IdentifierLen*2, len(hexString))
	}
	_, err := hex.Decode(identifier[:], []byte(hexString))
	if err != nil {
		return identifier, err
	}
	return identifier, nil
}

// String returns the hex string representation of the identifier.
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// TerminalString returns a shortened form for log lines.
func (id Identifier) TerminalString() string {
	return fmt.Sprintf("%x…%x", id[:3], id[29:])
}

// IsZero returns true if the identifier is the zero identifier.
func (id Identifier) IsZero() bool {
	return id == ZeroID
}
