package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/stage"
)

var epoch = time.Unix(1700000000, 0)

// probe records the samples a tweener delivers.
type probe struct {
	values   []float64
	finished int
}

func (p *probe) Sample(factor float64, finished bool) {
	p.values = append(p.values, factor)
	if finished {
		p.finished++
	}
}

func TestFrameClock_Domains(t *testing.T) {
	c := NewFrameClock()

	c.Step(epoch)
	assert.Equal(t, 0.0, c.Delta())
	assert.Equal(t, 0.0, c.RealDelta())

	c.Step(epoch.Add(100 * time.Millisecond))
	assert.InDelta(t, 0.1, c.Delta(), 1e-9)
	assert.InDelta(t, 0.1, c.RealDelta(), 1e-9)
	assert.InDelta(t, 0.1, c.Time(), 1e-9)
	assert.InDelta(t, 0.1, c.RealTime(), 1e-9)

	// Halving the scale halves only the scaled domain from here on.
	c.SetTimeScale(0.5)
	c.Step(epoch.Add(200 * time.Millisecond))
	assert.InDelta(t, 0.05, c.Delta(), 1e-9)
	assert.InDelta(t, 0.1, c.RealDelta(), 1e-9)
	assert.InDelta(t, 0.15, c.Time(), 1e-9)
	assert.InDelta(t, 0.2, c.RealTime(), 1e-9)
}

func TestFrameClock_ZeroScalePausesScaledDomain(t *testing.T) {
	c := NewFrameClock()
	c.SetTimeScale(0)

	c.Step(epoch)
	c.Step(epoch.Add(time.Second))

	assert.Equal(t, 0.0, c.Time())
	assert.Equal(t, 0.0, c.Delta())
	assert.InDelta(t, 1.0, c.RealTime(), 1e-9)
}

func TestFrameClock_NegativeScaleClampsToZero(t *testing.T) {
	c := NewFrameClock()
	c.SetTimeScale(-2)
	assert.Equal(t, 0.0, c.TimeScale())
}

func TestFrameClock_BackwardsWallTimeYieldsZeroDelta(t *testing.T) {
	c := NewFrameClock()
	c.Step(epoch)
	c.Step(epoch.Add(time.Second))
	require.InDelta(t, 1.0, c.RealTime(), 1e-9)

	c.Step(epoch.Add(500 * time.Millisecond))
	assert.Equal(t, 0.0, c.RealDelta())
	assert.InDelta(t, 1.0, c.RealTime(), 1e-9)
}

func TestEngine_StepTicksEveryTweenerOnce(t *testing.T) {
	e := New(nil)
	p := &probe{}
	tw := tween.New(e.Clock())
	tw.Duration = 1
	tw.SetSampler(p)
	e.Add(tw)

	e.Step(epoch)
	tw.PlayForward()
	e.Step(epoch.Add(250 * time.Millisecond))
	e.Step(epoch.Add(500 * time.Millisecond))

	// Frame-zero sample plus one per step after activation.
	require.Len(t, p.values, 3)
	assert.InDelta(t, 0.0, p.values[0], 1e-9)
	assert.InDelta(t, 0.25, p.values[1], 1e-9)
	assert.InDelta(t, 0.5, p.values[2], 1e-9)
	assert.Equal(t, uint64(3), e.Frame())
}

func TestEngine_TimeScaleAffectsOnlyScaledTweens(t *testing.T) {
	e := New(nil)
	e.Clock().SetTimeScale(0.5)

	scaled := &probe{}
	sc := tween.New(e.Clock())
	sc.Duration = 1
	sc.SetSampler(scaled)

	unscaled := &probe{}
	un := tween.New(e.Clock())
	un.Duration = 1
	un.IgnoreTimeScale = true
	un.SetSampler(unscaled)

	e.Add(sc, un)
	e.Step(epoch)
	sc.PlayForward()
	un.PlayForward()
	e.Step(epoch.Add(500 * time.Millisecond))

	assert.InDelta(t, 0.25, scaled.values[len(scaled.values)-1], 1e-9)
	assert.InDelta(t, 0.5, unscaled.values[len(unscaled.values)-1], 1e-9)
}

func TestEngine_AddRemoveActive(t *testing.T) {
	e := New(nil)
	a := tween.New(e.Clock())
	b := tween.New(e.Clock())
	e.Add(a, b)

	assert.Equal(t, 2, e.Len())
	assert.Equal(t, 0, e.Active())

	a.Toggle()
	assert.Equal(t, 1, e.Active())

	assert.True(t, e.Remove(a))
	assert.False(t, e.Remove(a))
	assert.Equal(t, 1, e.Len())
}

func TestEngine_GroupPlayback(t *testing.T) {
	e := New(nil)
	intro1 := tween.New(e.Clock())
	intro1.Group = 1
	intro2 := tween.New(e.Clock())
	intro2.Group = 1
	outro := tween.New(e.Clock())
	outro.Group = 2
	e.Add(intro1, intro2, outro)

	assert.Equal(t, 2, e.PlayGroup(1, true))
	assert.True(t, intro1.Enabled())
	assert.True(t, intro2.Enabled())
	assert.False(t, outro.Enabled())

	assert.Equal(t, 2, e.StopGroup(1))
	assert.Equal(t, 0, e.Active())
}

func TestEngine_AfterStepHook(t *testing.T) {
	e := New(nil)
	var frames []uint64
	e.SetHooks(Hooks{AfterStep: func(frame uint64) { frames = append(frames, frame) }})

	e.Step(epoch)
	e.Step(epoch.Add(time.Second))

	assert.Equal(t, []uint64{1, 2}, frames)
}

func TestEngine_SnapshotReflectsStage(t *testing.T) {
	st := stage.New()
	require.NoError(t, st.Add(stage.NewNode("hero")))
	e := New(st)

	node, err := st.Node("hero")
	require.NoError(t, err)
	node.Alpha = 0.5

	snap := e.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "hero", snap[0].Name)
	assert.Equal(t, 0.5, snap[0].Alpha)
}

func TestEngine_RunStopsOnCancel(t *testing.T) {
	e := New(nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx, 200) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("engine loop did not stop")
	}
	assert.Greater(t, e.Frame(), uint64(0))
}
