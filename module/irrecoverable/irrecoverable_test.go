package irrecoverable_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/module/irrecoverable"
)

var sentinel = errors.New("sentinel")

func TestThrowPropagatesFirstError(t *testing.T) {
	ctx, errCh := irrecoverable.WithSignaler(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx.Throw(sentinel)
		t.Error("Throw must not return")
	}()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, sentinel)
	case <-time.After(time.Second):
		t.Fatal("error was not propagated")
	}
	<-done

	// second throw is logged, not delivered
	go ctx.Throw(errors.New("second"))
	_, open := <-errCh
	assert.False(t, open)
}

func TestException(t *testing.T) {
	err := irrecoverable.NewExceptionf("wrapped: %w", sentinel)
	assert.True(t, irrecoverable.IsException(err))
	assert.ErrorIs(t, err, sentinel)

	assert.True(t, irrecoverable.IsException(fmt.Errorf("context: %w", err)))
	assert.False(t, irrecoverable.IsException(sentinel))

	require.Equal(t, "wrapped: sentinel", err.Error())
}
