package component_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/module/component"
	"github.com/addchain/collator/module/irrecoverable"
	"github.com/addchain/collator/utils/unittest"
)

func TestTaskSpawner_RunsTasks(t *testing.T) {
	spawner := component.NewTaskSpawner(unittest.Logger())

	ran := make(chan struct{})
	// spawned before start, held until ready
	spawner.Spawn("early", func(ctx irrecoverable.SignalerContext) {
		close(ran)
	})

	ctx, cancel := irrecoverable.NewMockSignalerContextWithCancel(t, context.Background())
	spawner.Start(ctx)
	unittest.RequireCloseBefore(t, spawner.Ready(), time.Second, "spawner did not become ready")
	unittest.RequireCloseBefore(t, ran, time.Second, "task did not run")

	blocked := make(chan struct{})
	spawner.Spawn("blocked", func(ctx irrecoverable.SignalerContext) {
		close(blocked)
		<-ctx.Done()
	})
	unittest.RequireCloseBefore(t, blocked, time.Second, "task did not run")
	require.Eventually(t, func() bool { return spawner.Running() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	unittest.RequireCloseBefore(t, spawner.Done(), time.Second, "spawner did not wait for tasks")
	assert.Equal(t, uint64(0), spawner.Running())

	// dropped after shutdown
	spawner.Spawn("late", func(ctx irrecoverable.SignalerContext) {
		t.Error("task spawned after shutdown must not run")
	})
}

func TestTaskSpawner_PropagatesThrownError(t *testing.T) {
	spawner := component.NewTaskSpawner(unittest.Logger())

	ctx, errCh := irrecoverable.WithSignaler(context.Background())
	spawner.Start(ctx)
	unittest.RequireCloseBefore(t, spawner.Ready(), time.Second, "spawner did not become ready")

	spawner.Spawn("failing", func(ctx irrecoverable.SignalerContext) {
		ctx.Throw(errFatal)
	})

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, errFatal)
	case <-time.After(time.Second):
		t.Fatal("thrown error was not propagated")
	}
	unittest.RequireCloseBefore(t, spawner.Done(), time.Second, "spawner did not shut down")
}
