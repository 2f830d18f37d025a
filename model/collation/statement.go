package collation

import (
	"encoding/binary"
	"fmt"

	"github.com/addchain/collator/model/parachain"
)

// StatementKind distinguishes the statements a backing validator can make
// about a candidate.
type StatementKind uint8

const (
	StatementUnknown StatementKind = iota
	// StatementSeconded proposes a candidate for inclusion.
	StatementSeconded
	// StatementValid attests to a candidate seconded by someone else.
	StatementValid
)

func (k StatementKind) String() string {
	switch k {
	case StatementSeconded:
		return "seconded"
	case StatementValid:
		return "valid"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// CandidateDescriptor summarizes a candidate for the relay chain.
type CandidateDescriptor struct {
	ParaID             uint32
	RelayParent        parachain.Identifier
	Collator           []byte
	PoVHash            parachain.Identifier
	ParaHead           parachain.Identifier
	ValidationCodeHash parachain.Identifier
	Signature          []byte // collator signature over Payload
}

// Payload returns the bytes the collator signs: the descriptor without the
// collator ID and the signature.
func (d CandidateDescriptor) Payload() []byte {
	payload := make([]byte, 4, 4+4*parachain.IdentifierLen)
	binary.LittleEndian.PutUint32(payload, d.ParaID)
	payload = append(payload, d.RelayParent[:]...)
	payload = append(payload, d.PoVHash[:]...)
	payload = append(payload, d.ParaHead[:]...)
	payload = append(payload, d.ValidationCodeHash[:]...)
	return payload
}

// CandidateReceipt is the descriptor plus a commitment to the candidate's
// outputs.
type CandidateReceipt struct {
	Descriptor      CandidateDescriptor
	CommitmentsHash parachain.Identifier
}

// Statement is a backing statement about a candidate. Candidate is set for
// seconded statements, CandidateHash for valid statements.
type Statement struct {
	Kind          StatementKind
	Candidate     *CandidateReceipt
	CandidateHash parachain.Identifier
}

// SecondedPoVHash returns the PoV hash asserted by a seconded statement.
// It returns false for any other statement.
func (s Statement) SecondedPoVHash() (parachain.Identifier, bool) {
	if s.Kind != StatementSeconded || s.Candidate == nil {
		return parachain.ZeroID, false
	}
	return s.Candidate.Descriptor.PoVHash, true
}

func (s Statement) String() string {
	if povHash, ok := s.SecondedPoVHash(); ok {
		return fmt.Sprintf("seconded(pov=%x)", povHash[:])
	}
	return fmt.Sprintf("%s(candidate=%x)", s.Kind, s.CandidateHash[:])
}

// SecondedSignal is the relay chain's acknowledgement of a collation.
type SecondedSignal struct {
	RelayParent parachain.Identifier
	Statement   Statement
}
