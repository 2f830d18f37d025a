package util_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/module/util"
	"github.com/addchain/collator/utils/unittest"
)

type readyDone struct {
	ready chan struct{}
	done  chan struct{}
}

func newReadyDone() *readyDone {
	return &readyDone{ready: make(chan struct{}), done: make(chan struct{})}
}

func (r *readyDone) Ready() <-chan struct{} { return r.ready }
func (r *readyDone) Done() <-chan struct{}  { return r.done }

func TestAllReady(t *testing.T) {
	first, second := newReadyDone(), newReadyDone()
	ready := util.AllReady(first, second)

	close(first.ready)
	unittest.RequireNeverClosedWithin(t, ready, 50*time.Millisecond, "ready before all components were")

	close(second.ready)
	unittest.RequireCloseBefore(t, ready, time.Second, "not ready after all components were")
}

func TestAllDone(t *testing.T) {
	first, second := newReadyDone(), newReadyDone()
	done := util.AllDone(first, second)

	close(second.done)
	unittest.RequireNeverClosedWithin(t, done, 50*time.Millisecond, "done before all components were")

	close(first.done)
	unittest.RequireCloseBefore(t, done, time.Second, "not done after all components were")
}

func TestAllClosedEmpty(t *testing.T) {
	unittest.RequireCloseBefore(t, util.AllClosed(), time.Second, "no channels to wait for")
}

func TestCheckClosed(t *testing.T) {
	ch := make(chan struct{})
	assert.False(t, util.CheckClosed(ch))
	close(ch)
	assert.True(t, util.CheckClosed(ch))
}

func TestWaitError(t *testing.T) {
	t.Run("error wins over a closed done channel", func(t *testing.T) {
		errCh := make(chan error, 1)
		done := make(chan struct{})
		sentinel := errors.New("sentinel")
		errCh <- sentinel
		close(done)

		require.ErrorIs(t, util.WaitError(errCh, done), sentinel)
	})

	t.Run("done without error", func(t *testing.T) {
		done := make(chan struct{})
		close(done)

		require.NoError(t, util.WaitError(make(chan error), done))
	})
}
