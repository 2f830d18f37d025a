package collation

import (
	"github.com/addchain/collator/model/parachain"
)

// OutboundHrmpMessage is a horizontal message sent to another parachain.
type OutboundHrmpMessage struct {
	Recipient uint32
	Data      []byte
}

// Collation is a candidate block packaged for submission to the relay chain.
type Collation struct {
	// UpwardMessages are messages to the relay chain. Always empty here.
	UpwardMessages [][]byte
	// HorizontalMessages are messages to other parachains. Always empty here.
	HorizontalMessages []OutboundHrmpMessage
	// NewValidationCode is set when the parachain upgrades its code. Always nil here.
	NewValidationCode []byte
	// HeadData is the canonical encoding of the new header.
	HeadData []byte
	// ProofOfValidity is the payload as transmitted.
	ProofOfValidity PoV
	// ProcessedDownwardMessages is the number of downward messages consumed.
	ProcessedDownwardMessages uint32
	// HrmpWatermark is the relay-parent number the collation was built on.
	HrmpWatermark uint32
}

// ValidationData is what the relay chain announces for a round: the parent
// header to build on and the relay-parent number.
type ValidationData struct {
	ParentHead             []byte
	RelayParentNumber      uint32
	RelayParentStorageRoot parachain.Identifier
	MaxPoVSize             uint32
}

// Result is what a collator hands back for a round: the collation, its
// signed descriptor and the one-shot delivery point for the relay chain's
// verdict.
type Result struct {
	Collation    Collation
	Descriptor   CandidateDescriptor
	Confirmation *ConfirmationSender
}
