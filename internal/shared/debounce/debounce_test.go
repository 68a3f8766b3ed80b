package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncer_OnlyLastCallRuns(t *testing.T) {
	d := New(30 * time.Millisecond)
	var hits atomic.Int32
	var last atomic.Int32

	for i := int32(1); i <= 5; i++ {
		v := i
		d.Call(func() {
			hits.Add(1)
			last.Store(v)
		})
	}
	require.True(t, d.Pending())
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, int32(5), last.Load())
	require.False(t, d.Pending())
}

func TestDebouncer_StopDropsPendingCall(t *testing.T) {
	d := New(20 * time.Millisecond)
	var hits atomic.Int32
	d.Call(func() { hits.Add(1) })
	d.Stop()
	time.Sleep(60 * time.Millisecond)
	require.Zero(t, hits.Load())
}

func TestDebouncer_ZeroDelayRunsInline(t *testing.T) {
	d := New(0)
	ran := false
	d.Call(func() { ran = true })
	require.True(t, ran)
}
