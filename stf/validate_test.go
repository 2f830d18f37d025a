package stf_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/model/collation"
	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/stf"
)

func TestValidationCode(t *testing.T) {
	code := stf.Code()

	// the exported blob is stable
	assert.Equal(t, code.Bytes(), stf.Code().Bytes())
	assert.Equal(t, code.Hash(), stf.Code().Hash())

	decoded, err := stf.DecodeValidationCode(code.Bytes())
	require.NoError(t, err)
	assert.Equal(t, code, decoded)
}

func TestDecodeValidationCode_Unsupported(t *testing.T) {
	_, err := stf.DecodeValidationCode([]byte{0xff, 0x00})
	assert.ErrorIs(t, err, stf.ErrUnsupportedCode)

	other := stf.Code()
	other.Version = 2
	data, err := cbor.Marshal(other)
	require.NoError(t, err)
	_, err = stf.DecodeValidationCode(data)
	assert.ErrorIs(t, err, stf.ErrUnsupportedCode)
}

func TestValidateBlock(t *testing.T) {
	parent := parachain.Genesis()
	block := parachain.BlockData{State: 0, Add: 7}
	expected, err := stf.Execute(parent.ID(), parent, block)
	require.NoError(t, err)

	raw := collation.PoV{BlockData: block.Encode()}
	compressed, err := collation.CompressPoV(raw)
	require.NoError(t, err)

	for name, pov := range map[string]collation.PoV{"raw": raw, "compressed": compressed} {
		t.Run(name, func(t *testing.T) {
			result, err := stf.ValidateBlock(stf.Code().Bytes(), stf.ValidationParams{
				ParentHead:        parent.Encode(),
				BlockData:         pov.BlockData,
				RelayParentNumber: 17,
			})
			require.NoError(t, err)
			assert.Equal(t, expected.Encode(), result.HeadData)
			assert.Equal(t, uint32(17), result.HrmpWatermark)
			assert.Zero(t, result.ProcessedDownwardMessages)
			assert.Empty(t, result.UpwardMessages)
			assert.Empty(t, result.HorizontalMessages)
			assert.Nil(t, result.NewValidationCode)
		})
	}
}

func TestValidateBlock_Invalid(t *testing.T) {
	parent := parachain.Genesis()
	code := stf.Code().Bytes()

	t.Run("unsupported code", func(t *testing.T) {
		_, err := stf.ValidateBlock([]byte("not code"), stf.ValidationParams{
			ParentHead: parent.Encode(),
			BlockData:  parachain.BlockData{State: 0, Add: 7}.Encode(),
		})
		assert.ErrorIs(t, err, stf.ErrUnsupportedCode)
	})

	t.Run("malformed parent", func(t *testing.T) {
		_, err := stf.ValidateBlock(code, stf.ValidationParams{
			ParentHead: []byte{1, 2, 3},
			BlockData:  parachain.BlockData{State: 0, Add: 7}.Encode(),
		})
		assert.True(t, stf.IsInvalidCandidateError(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := stf.ValidateBlock(code, stf.ValidationParams{
			ParentHead: parent.Encode(),
			BlockData:  []byte{1, 2, 3},
		})
		assert.True(t, stf.IsInvalidCandidateError(err))
	})

	t.Run("state mismatch", func(t *testing.T) {
		_, err := stf.ValidateBlock(code, stf.ValidationParams{
			ParentHead: parent.Encode(),
			BlockData:  parachain.BlockData{State: 1, Add: 7}.Encode(),
		})
		assert.True(t, stf.IsInvalidCandidateError(err))
		assert.True(t, stf.IsStateMismatchError(err))
	})
}
