package local_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/module/local"
	"github.com/addchain/collator/utils/unittest"
)

func TestDeterministicFromSeed(t *testing.T) {
	seed := unittest.RandomBytes(local.SeedLen)

	first, err := local.New(seed)
	require.NoError(t, err)
	second, err := local.New(seed)
	require.NoError(t, err)

	assert.Equal(t, first.CollatorID(), second.CollatorID())
	assert.True(t, first.PublicKey().Equals(second.PublicKey()))
}

func TestEphemeralKeysDiffer(t *testing.T) {
	first, err := local.Ephemeral()
	require.NoError(t, err)
	second, err := local.Ephemeral()
	require.NoError(t, err)

	assert.NotEqual(t, first.CollatorID(), second.CollatorID())
}

func TestShortSeed(t *testing.T) {
	_, err := local.New(unittest.RandomBytes(8))
	require.Error(t, err)
}

func TestSignVerify(t *testing.T) {
	me, err := local.Ephemeral()
	require.NoError(t, err)
	other, err := local.Ephemeral()
	require.NoError(t, err)

	msg := []byte("collation")
	sig, err := me.Sign(msg)
	require.NoError(t, err)

	valid, err := local.Verify(me.CollatorID(), msg, sig)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = local.Verify(other.CollatorID(), msg, sig)
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = local.Verify(me.CollatorID(), []byte("other"), sig)
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = local.Verify([]byte{1, 2, 3}, msg, sig)
	require.Error(t, err)
}
