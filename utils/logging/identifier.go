package logging

import (
	"github.com/addchain/collator/model/parachain"
)

// ID returns the identifier as a byte slice, for zerolog's Hex fields.
func ID(id parachain.Identifier) []byte {
	return id[:]
}

// Head returns the ID of the header as a byte slice.
func Head(head parachain.HeadData) []byte {
	return ID(head.ID())
}
