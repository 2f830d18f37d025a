// Package stf is the state transition function of the adder parachain. It
// must produce bit-identical results wherever it is executed: the collator
// runs it to build blocks, validators run it to check them.
package stf

import (
	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module/irrecoverable"
)

// Execute applies block on top of parentHead and returns the new header.
//
// parentHash must be the ID of parentHead; anything else is a bug in the
// caller and is reported as an irrecoverable.Exception.
//
// Expected errors during normal operations:
//   - StateMismatchError if the digest of block.State is not parentHead.PostState
func Execute(parentHash parachain.Identifier, parentHead parachain.HeadData, block parachain.BlockData) (parachain.HeadData, error) {
	if parentHead.ID() != parentHash {
		return parachain.HeadData{}, irrecoverable.NewExceptionf("parent hash %x is not the hash of the parent head %x", parentHash[:], parentHead.ID())
	}

	claimed := parachain.HashState(block.State)
	if claimed != parentHead.PostState {
		return parachain.HeadData{}, StateMismatchError{Expected: parentHead.PostState, Actual: claimed}
	}

	// wraps at 2^64, the state space is a cyclic counter
	newState := block.State + block.Add

	return parachain.HeadData{
		Number:     parentHead.Number + 1,
		ParentHash: parentHash,
		PostState:  parachain.HashState(newState),
	}, nil
}
