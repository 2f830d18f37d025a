package collation_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/model/collation"
	"github.com/addchain/collator/model/parachain"
)

func TestPoVCompression(t *testing.T) {
	raw := collation.PoV{BlockData: parachain.BlockData{State: 42, Add: 7}.Encode()}
	require.False(t, raw.IsCompressed())

	compressed, err := collation.CompressPoV(raw)
	require.NoError(t, err)
	assert.True(t, compressed.IsCompressed())
	assert.NotEqual(t, raw.Hash(), compressed.Hash())

	decompressed, err := collation.DecompressPoV(compressed)
	require.NoError(t, err)
	assert.Equal(t, raw.BlockData, decompressed.BlockData)
}

func TestMaybeCompressPoV(t *testing.T) {
	t.Run("kept raw when compression does not shrink the payload", func(t *testing.T) {
		raw := collation.PoV{BlockData: parachain.BlockData{State: 42, Add: 7}.Encode()}

		pov, err := collation.MaybeCompressPoV(raw)
		require.NoError(t, err)
		assert.False(t, pov.IsCompressed())
		assert.Equal(t, raw, pov)
		assert.Equal(t, raw.Hash(), pov.Hash())
	})

	t.Run("compressed when smaller", func(t *testing.T) {
		raw := collation.PoV{BlockData: bytes.Repeat([]byte{7}, 4096)}

		pov, err := collation.MaybeCompressPoV(raw)
		require.NoError(t, err)
		assert.True(t, pov.IsCompressed())
		assert.Less(t, len(pov.BlockData), len(raw.BlockData))

		decompressed, err := collation.DecompressPoV(pov)
		require.NoError(t, err)
		assert.Equal(t, raw.BlockData, decompressed.BlockData)
	})

	t.Run("size limit", func(t *testing.T) {
		_, err := collation.MaybeCompressPoV(collation.PoV{BlockData: make([]byte, collation.MaxPoVSize+1)})
		assert.ErrorIs(t, err, collation.ErrPoVTooLarge)
	})
}

func TestDecompressPoV_Raw(t *testing.T) {
	raw := collation.PoV{BlockData: []byte{1, 2, 3}}

	decompressed, err := collation.DecompressPoV(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, decompressed)
}

func TestPoVSizeLimit(t *testing.T) {
	atLimit := collation.PoV{BlockData: bytes.Repeat([]byte{0}, collation.MaxPoVSize/2)}
	compressed, err := collation.CompressPoV(atLimit)
	require.NoError(t, err)
	require.Less(t, len(compressed.BlockData), len(atLimit.BlockData))

	decompressed, err := collation.DecompressPoV(compressed)
	require.NoError(t, err)
	assert.Equal(t, atLimit.BlockData, decompressed.BlockData)

	tooLarge := collation.PoV{BlockData: make([]byte, collation.MaxPoVSize+1)}
	_, err = collation.CompressPoV(tooLarge)
	assert.ErrorIs(t, err, collation.ErrPoVTooLarge)
	_, err = collation.DecompressPoV(tooLarge)
	assert.ErrorIs(t, err, collation.ErrPoVTooLarge)
}

func TestDecompressPoV_Corrupted(t *testing.T) {
	compressed, err := collation.CompressPoV(collation.PoV{BlockData: []byte("some payload")})
	require.NoError(t, err)

	corrupted := collation.PoV{BlockData: compressed.BlockData[:len(compressed.BlockData)-2]}
	_, err = collation.DecompressPoV(corrupted)
	assert.Error(t, err)
}
