package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_FirstWaitImmediate(t *testing.T) {
	p := NewPacer("test", time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	require.NoError(t, p.Wait(ctx))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestPacer_SecondWaitSpaced(t *testing.T) {
	interval := 100 * time.Millisecond
	p := NewPacer("test", interval)

	ctx := context.Background()
	start := time.Now()
	require.NoError(t, p.Wait(ctx))
	require.NoError(t, p.Wait(ctx))

	assert.GreaterOrEqual(t, time.Since(start), interval)
}

func TestPacer_WaitCancelled(t *testing.T) {
	p := NewPacer("test", time.Hour)

	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Wait(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "test")
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}
