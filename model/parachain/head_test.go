package parachain_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/utils/unittest"
)

// the digest function is fixed; the empty-input BLAKE3 vector pins it
func TestMakeID_Blake3(t *testing.T) {
	expected, err := parachain.HexStringToIdentifier("af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262")
	require.NoError(t, err)
	assert.Equal(t, expected, parachain.MakeID(nil))
}

func TestHeadDataEncoding(t *testing.T) {
	head := unittest.HeadDataFixture()

	data := head.Encode()
	require.Len(t, data, parachain.HeadDataLen)
	assert.Equal(t, head.Number, binary.LittleEndian.Uint64(data[0:8]))
	assert.Equal(t, head.ParentHash[:], data[8:40])
	assert.Equal(t, head.PostState[:], data[40:72])

	decoded, err := parachain.DecodeHeadData(data)
	require.NoError(t, err)
	assert.Equal(t, head, decoded)
	assert.Equal(t, head.ID(), decoded.ID())
}

func TestDecodeHeadData_InvalidLength(t *testing.T) {
	data := unittest.HeadDataFixture().Encode()

	_, err := parachain.DecodeHeadData(data[:len(data)-1])
	assert.Error(t, err)

	_, err = parachain.DecodeHeadData(append(data, 0x00))
	assert.Error(t, err)

	_, err = parachain.DecodeHeadData(nil)
	assert.Error(t, err)
}

func TestGenesis(t *testing.T) {
	first := parachain.Genesis()
	second := parachain.Genesis()

	assert.Equal(t, first, second)
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, first.Encode(), second.Encode())

	assert.Equal(t, uint64(0), first.Number)
	assert.True(t, first.ParentHash.IsZero())
	assert.Equal(t, parachain.MakeID(make([]byte, 8)), first.PostState)
}

func TestBlockDataEncoding(t *testing.T) {
	block := parachain.BlockData{State: 0x0102030405060708, Add: 7}

	data := block.Encode()
	require.Len(t, data, parachain.BlockDataLen)
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, data[:8])
	assert.Equal(t, []byte{0x07, 0, 0, 0, 0, 0, 0, 0}, data[8:])

	decoded, err := parachain.DecodeBlockData(data)
	require.NoError(t, err)
	assert.Equal(t, block, decoded)

	_, err = parachain.DecodeBlockData(data[:15])
	assert.Error(t, err)
}

func TestHashState(t *testing.T) {
	assert.Equal(t, parachain.MakeID([]byte{3, 0, 0, 0, 0, 0, 0, 0}), parachain.HashState(3))
	assert.NotEqual(t, parachain.HashState(3), parachain.HashState(4))
}

func TestHexStringToIdentifier(t *testing.T) {
	id := unittest.IdentifierFixture()

	parsed, err := parachain.HexStringToIdentifier(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = parachain.HexStringToIdentifier("abcd")
	assert.Error(t, err)
}
