package unittest

import (
	"crypto/rand"
	"math"
	mrand "math/rand"

	"github.com/addchain/collator/model/collation"
	"github.com/addchain/collator/model/parachain"
)

func IdentifierFixture() parachain.Identifier {
	var id parachain.Identifier
	_, _ = rand.Read(id[:])
	return id
}

func RandomBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

// HeadDataFixture returns a header with random contents. It is not
// necessarily reachable from genesis.
func HeadDataFixture(opts ...func(*parachain.HeadData)) parachain.HeadData {
	head := parachain.HeadData{
		Number:     uint64(mrand.Int63n(math.MaxInt32)),
		ParentHash: IdentifierFixture(),
		PostState:  IdentifierFixture(),
	}
	for _, apply := range opts {
		apply(&head)
	}
	return head
}

func WithNumber(number uint64) func(*parachain.HeadData) {
	return func(head *parachain.HeadData) {
		head.Number = number
	}
}

// ValidationDataFixture announces the given parent for a round.
func ValidationDataFixture(parent parachain.HeadData, relayParentNumber uint32) *collation.ValidationData {
	return &collation.ValidationData{
		ParentHead:             parent.Encode(),
		RelayParentNumber:      relayParentNumber,
		RelayParentStorageRoot: IdentifierFixture(),
		MaxPoVSize:             collation.MaxPoVSize,
	}
}

// SecondedSignalFixture returns a seconded statement for the given PoV hash.
func SecondedSignalFixture(relayParent parachain.Identifier, povHash parachain.Identifier) *collation.SecondedSignal {
	return &collation.SecondedSignal{
		RelayParent: relayParent,
		Statement: collation.Statement{
			Kind: collation.StatementSeconded,
			Candidate: &collation.CandidateReceipt{
				Descriptor: collation.CandidateDescriptor{
					RelayParent: relayParent,
					PoVHash:     povHash,
					ParaHead:    IdentifierFixture(),
				},
				CommitmentsHash: IdentifierFixture(),
			},
		},
	}
}
