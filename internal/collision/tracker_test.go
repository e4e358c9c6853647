package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geomcodec/errs"
)

func TestTracker_TrackKey(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackKey("wall", 1))
	require.NoError(t, tr.TrackKey("slab", 2))
	require.Equal(t, 2, tr.Count())
	require.Equal(t, []string{"wall", "slab"}, tr.Keys())
	require.False(t, tr.HasCollision())
}

func TestTracker_TrackKey_Errors(t *testing.T) {
	tr := NewTracker()

	require.ErrorIs(t, tr.TrackKey("", 1), errs.ErrInvalidKey)

	require.NoError(t, tr.TrackKey("wall", 1))
	require.ErrorIs(t, tr.TrackKey("wall", 1), errs.ErrDuplicateKey)
	require.Equal(t, 1, tr.Count())
}

func TestTracker_Collision(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackKey("wall", 42))
	require.NoError(t, tr.TrackKey("door", 42))
	require.True(t, tr.HasCollision())
	require.ErrorIs(t, tr.TrackKey("door", 42), errs.ErrDuplicateKey)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.TrackKey("a", 1))
	require.NoError(t, tr.TrackKey("b", 1))
	require.True(t, tr.HasCollision())

	tr.Reset()

	require.Zero(t, tr.Count())
	require.False(t, tr.HasCollision())
	require.NoError(t, tr.TrackKey("a", 1))
}
