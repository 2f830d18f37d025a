package stf

import (
	"errors"

	"github.com/addchain/collator/model/collation"
	"github.com/addchain/collator/model/parachain"
)

// ValidationParams are the inputs of a candidate validation.
type ValidationParams struct {
	// ParentHead is the encoded parent header the candidate builds on.
	ParentHead []byte
	// BlockData is the PoV payload as transmitted, possibly compressed.
	BlockData []byte
	// RelayParentNumber is the number of the relay parent.
	RelayParentNumber uint32
}

// ValidationResult are the outputs of a successful candidate validation.
type ValidationResult struct {
	HeadData                  []byte
	NewValidationCode         []byte
	UpwardMessages            [][]byte
	HorizontalMessages        []collation.OutboundHrmpMessage
	ProcessedDownwardMessages uint32
	HrmpWatermark             uint32
}

// ValidateBlock is the entry point of the validation code: it re-executes a
// candidate from nothing but the encoded parent head and the PoV and returns
// the header the candidate must carry.
//
// Expected errors during normal operations:
//   - ErrUnsupportedCode if code is not this transition function
//   - InvalidCandidateError if the candidate is malformed or does not execute
func ValidateBlock(code []byte, params ValidationParams) (*ValidationResult, error) {
	_, err := DecodeValidationCode(code)
	if err != nil {
		return nil, err
	}

	parent, err := parachain.DecodeHeadData(params.ParentHead)
	if err != nil {
		return nil, NewInvalidCandidateErrorf("could not decode parent head: %w", err)
	}

	pov, err := collation.DecompressPoV(collation.PoV{BlockData: params.BlockData})
	if err != nil {
		if errors.Is(err, collation.ErrPoVTooLarge) {
			return nil, NewInvalidCandidateErrorf("%w", err)
		}
		return nil, NewInvalidCandidateErrorf("could not decompress block data: %w", err)
	}

	block, err := parachain.DecodeBlockData(pov.BlockData)
	if err != nil {
		return nil, NewInvalidCandidateErrorf("could not decode block data: %w", err)
	}

	head, err := Execute(parent.ID(), parent, block)
	if err != nil {
		return nil, NewInvalidCandidateErrorf("could not execute block: %w", err)
	}

	return &ValidationResult{
		HeadData:                  head.Encode(),
		ProcessedDownwardMessages: 0,
		HrmpWatermark:             params.RelayParentNumber,
	}, nil
}
