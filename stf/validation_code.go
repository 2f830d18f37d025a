package stf

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/addchain/collator/model/parachain"
)

const (
	CodeName    = "adder"
	CodeVersion = 1
	CodeHasher  = "blake3-256"
	HeadLayout  = "u64le:number|h256:parent_hash|h256:post_state"
	BodyLayout  = "u64le:state|u64le:add"
)

// ValidationCode is the artifact relay-chain validators use to re-execute
// candidates without trusting the collator. It pins the transition function,
// its digest and both encodings.
type ValidationCode struct {
	Name       string `cbor:"1,keyasint"`
	Version    uint16 `cbor:"2,keyasint"`
	Hasher     string `cbor:"3,keyasint"`
	HeadLayout string `cbor:"4,keyasint"`
	BodyLayout string `cbor:"5,keyasint"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("could not create canonical cbor encoder: %v", err))
	}
}

// Code returns the validation code of this transition function.
func Code() ValidationCode {
	return ValidationCode{
		Name:       CodeName,
		Version:    CodeVersion,
		Hasher:     CodeHasher,
		HeadLayout: HeadLayout,
		BodyLayout: BodyLayout,
	}
}

// Bytes returns the canonical CBOR encoding of the code, the blob exported
// for registration with the relay chain.
func (c ValidationCode) Bytes() []byte {
	data, err := encMode.Marshal(c)
	if err != nil {
		// a struct of strings and integers always encodes
		panic(fmt.Sprintf("could not encode validation code: %v", err))
	}
	return data
}

// Hash returns the digest of the exported blob.
func (c ValidationCode) Hash() parachain.Identifier {
	return parachain.MakeID(c.Bytes())
}

// DecodeValidationCode parses an exported blob and checks that it describes
// a transition function this package implements.
//
// Expected errors during normal operations:
//   - ErrUnsupportedCode if the blob is malformed or describes another function
func DecodeValidationCode(data []byte) (ValidationCode, error) {
	var code ValidationCode
	err := cbor.Unmarshal(data, &code)
	if err != nil {
		return ValidationCode{}, fmt.Errorf("%w: %s", ErrUnsupportedCode, err.Error())
	}
	if code != Code() {
		return ValidationCode{}, fmt.Errorf("%w: %s v%d (%s)", ErrUnsupportedCode, code.Name, code.Version, code.Hasher)
	}
	return code, nil
}
