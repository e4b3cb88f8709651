//go:build linux

package linuxcall

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerSameThread(t *testing.T) {
	w := NewWorker()
	defer w.Close()
	require.NotZero(t, w.Tid())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var tid int
			assert.NoError(t, w.Do(func() { tid = Gettid() }))
			assert.Equal(t, w.Tid(), tid)
		}()
	}
	wg.Wait()
}

func TestWorkerThreadName(t *testing.T) {
	w := NewWorker()
	defer w.Close()

	var got string
	var setErr, getErr error
	require.NoError(t, w.Do(func() { setErr = SetThreadName("lc-worker") }))
	require.NoError(t, w.Do(func() { got, getErr = ThreadName() }))
	require.NoError(t, setErr)
	require.NoError(t, getErr)
	assert.Equal(t, "lc-worker", got)
}

func TestWorkerReentrant(t *testing.T) {
	w := NewWorker()
	defer w.Close()

	var inner error
	ran := false
	require.NoError(t, w.Do(func() {
		inner = w.Do(func() { ran = true })
	}))
	assert.ErrorIs(t, inner, ErrWorkerReentrant)
	assert.False(t, ran)

	// the worker is still usable afterwards
	require.NoError(t, w.Do(func() { ran = true }))
	assert.True(t, ran)
}

func TestWorkerClosed(t *testing.T) {
	w := NewWorker()
	w.Close()
	w.Close()
	assert.ErrorIs(t, w.Do(func() {}), ErrWorkerClosed)
}
