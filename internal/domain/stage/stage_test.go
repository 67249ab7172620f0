package stage

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/tweenbox/internal/domain/value"
)

func TestNewNode_Defaults(t *testing.T) {
	n := NewNode("logo")

	assert.Equal(t, "logo", n.Name)
	assert.Equal(t, value.Vec3{}, n.Position)
	assert.Equal(t, value.Vec3{X: 1, Y: 1, Z: 1}, n.Scale)
	assert.Equal(t, 1.0, n.Alpha)
	assert.Equal(t, value.White, n.Color)
}

func TestStage_AddAndLookup(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(NewNode("a")))
	require.NoError(t, s.Add(NewNode("b")))

	n, err := s.Node("a")
	require.NoError(t, err)
	assert.Equal(t, "a", n.Name)

	_, err = s.Node("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNodeNotFound))

	err = s.Add(NewNode("a"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateNode))
}

func TestStage_SnapshotPreservesOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(NewNode("first")))
	require.NoError(t, s.Add(NewNode("second")))

	first, err := s.Node("first")
	require.NoError(t, err)
	first.Alpha = 0.25
	first.Position = value.Vec3{X: 3}

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "first", snap[0].Name)
	assert.Equal(t, "second", snap[1].Name)
	assert.Equal(t, 0.25, snap[0].Alpha)
	assert.Equal(t, 3.0, snap[0].Position.X)

	// Snapshot is a copy, later writes do not leak into it.
	first.Alpha = 0.9
	assert.Equal(t, 0.25, snap[0].Alpha)
}
