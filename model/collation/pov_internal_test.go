package collation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompressPoV_Bomb(t *testing.T) {
	bomb := append([]byte{}, compressedPrefix...)
	bomb = encoder.EncodeAll(make([]byte, MaxPoVSize+1024), bomb)

	_, err := DecompressPoV(PoV{BlockData: bomb})
	assert.ErrorIs(t, err, ErrPoVTooLarge)
}
