package aesfd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLifecycleTrackerTrackAndDestroy(t *testing.T) {
	lt := NewLifecycleTracker()
	ctx, err := NewContext(make([]byte, 16))
	require.NoError(t, err)

	require.NoError(t, lt.Track("a", ctx))

	state, err := lt.State("a")
	require.NoError(t, err)
	require.Equal(t, ContextLive, state)
	require.Equal(t, []string{"a"}, lt.Live())

	require.NoError(t, lt.Destroy("a"))
	state, err = lt.State("a")
	require.NoError(t, err)
	require.Equal(t, ContextDestroyed, state)
	require.Empty(t, lt.Live())

	for _, b := range ctx.roundKey {
		require.Equal(t, byte(0), b)
	}
}

func TestLifecycleTrackerRejectsDuplicateID(t *testing.T) {
	lt := NewLifecycleTracker()
	ctx1, err := NewContext(make([]byte, 16))
	require.NoError(t, err)
	ctx2, err := NewContext(make([]byte, 16))
	require.NoError(t, err)
	defer ctx2.Destroy()

	require.NoError(t, lt.Track("dup", ctx1))
	require.Error(t, lt.Track("dup", ctx2))
}

func TestLifecycleTrackerRejectsDoubleDestroy(t *testing.T) {
	lt := NewLifecycleTracker()
	ctx, err := NewContext(make([]byte, 16))
	require.NoError(t, err)

	require.NoError(t, lt.Track("once", ctx))
	require.NoError(t, lt.Destroy("once"))
	require.Error(t, lt.Destroy("once"))
}

func TestLifecycleTrackerUnknownIDErrors(t *testing.T) {
	lt := NewLifecycleTracker()
	require.Error(t, lt.Destroy("missing"))
	_, err := lt.State("missing")
	require.Error(t, err)
}

func TestContextStateString(t *testing.T) {
	require.Equal(t, "live", ContextLive.String())
	require.Equal(t, "destroyed", ContextDestroyed.String())
	require.Equal(t, "unknown", ContextState(99).String())
}
