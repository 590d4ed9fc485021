package tasks

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAdd(t *testing.T) {
	s := New(zap.NewNop(), 3, 10)
	s.Run()

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		assert.True(t, s.Add(func() { ran.Add(1) }))
	}

	require.NoError(t, s.Shutdown(context.Background()))
	assert.Equal(t, int32(5), ran.Load())
}

func TestAfter_RunsBeforeShutdownReturns(t *testing.T) {
	s := New(zap.NewNop(), 1, 1)
	s.Run()

	start := time.Now()
	var ranAt atomic.Int64
	assert.True(t, s.After(50*time.Millisecond, func() { ranAt.Store(time.Since(start).Nanoseconds()) }))

	require.NoError(t, s.Shutdown(context.Background()))
	assert.GreaterOrEqual(t, time.Duration(ranAt.Load()), 50*time.Millisecond)
}

func TestShutdown_RejectsNewTasks(t *testing.T) {
	s := New(zap.NewNop(), 1, 1)
	s.Run()
	require.NoError(t, s.Shutdown(context.Background()))

	assert.False(t, s.Add(func() {}))
	assert.False(t, s.After(time.Millisecond, func() {}))
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestShutdown_Timeout(t *testing.T) {
	s := New(zap.NewNop(), 1, 1)
	s.Run()
	s.After(time.Hour, func() {})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Shutdown(ctx), context.DeadlineExceeded)
}

func TestPanicDoesNotKillWorker(t *testing.T) {
	s := New(zap.NewNop(), 1, 2)
	s.Run()

	var ran atomic.Bool
	s.Add(func() { panic("boom") })
	s.Add(func() { ran.Store(true) })

	require.NoError(t, s.Shutdown(context.Background()))
	assert.True(t, ran.Load())
}
