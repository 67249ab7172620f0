package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instant returns an enabled-on-demand tween that completes on the
// first tick of every play.
func instant() *Tweener {
	tw := New(newManualClock())
	tw.Duration = 0
	return tw
}

type sinkCall struct {
	method string
	tw     *Tweener
}

// recordingSink captures legacy channel invocations.
type recordingSink struct {
	calls []sinkCall
}

func (s *recordingSink) TweenMessage(method string, t *Tweener) {
	s.calls = append(s.calls, sinkCall{method: method, tw: t})
}

func TestTweener_ListenersFireInRegistrationOrder(t *testing.T) {
	tw := instant()
	var order []string
	tw.AddOnFinished(func() { order = append(order, "first") }, false)
	tw.AddOnFinished(func() { order = append(order, "second") }, false)
	tw.AddOnFinished(func() { order = append(order, "third") }, false)

	tw.PlayForward()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestTweener_OneShotListenerFiresOnce(t *testing.T) {
	tw := instant()
	oneShot := 0
	persistent := 0
	tw.AddOnFinished(func() { oneShot++ }, true)
	tw.AddOnFinished(func() { persistent++ }, false)

	tw.PlayForward()
	tw.PlayForward()
	tw.PlayForward()

	assert.Equal(t, 1, oneShot)
	assert.Equal(t, 3, persistent)
}

func TestTweener_PersistentListenerFiresOncePerCompletion(t *testing.T) {
	tw := instant()
	count := 0
	tw.AddOnFinished(func() { count++ }, false)

	for i := 0; i < 5; i++ {
		tw.PlayForward()
		assert.Equal(t, i+1, count, "completion %d", i)
	}
}

func TestTweener_SetOnFinishedReplacesListeners(t *testing.T) {
	tw := instant()
	old := 0
	replacement := 0
	tw.AddOnFinished(func() { old++ }, false)
	tw.AddOnFinished(func() { old++ }, false)
	tw.SetOnFinished(func() { replacement++ })

	tw.PlayForward()

	assert.Equal(t, 0, old)
	assert.Equal(t, 1, replacement)
}

func TestTweener_RemoveOnFinished(t *testing.T) {
	tw := instant()
	count := 0
	h := tw.AddOnFinished(func() { count++ }, false)

	assert.True(t, tw.RemoveOnFinished(h))
	assert.False(t, tw.RemoveOnFinished(h), "double removal reports false")

	tw.PlayForward()
	assert.Equal(t, 0, count)
}

func TestTweener_ListenerAddedDuringFiringWaitsForNextCompletion(t *testing.T) {
	tw := instant()
	var order []string
	tw.AddOnFinished(func() {
		order = append(order, "registrar")
		tw.AddOnFinished(func() { order = append(order, "late") }, false)
	}, true)

	tw.PlayForward()
	assert.Equal(t, []string{"registrar"}, order, "listener added mid-firing must not run in the same firing")

	tw.PlayForward()
	assert.Equal(t, []string{"registrar", "late"}, order)
}

func TestTweener_ListenerRemovedDuringFiringIsSkipped(t *testing.T) {
	tw := instant()
	var order []string
	var victim *Handler
	tw.AddOnFinished(func() {
		order = append(order, "remover")
		tw.RemoveOnFinished(victim)
	}, false)
	victim = tw.AddOnFinished(func() { order = append(order, "victim") }, false)

	tw.PlayForward()
	assert.Equal(t, []string{"remover"}, order)

	// The removed listener is gone for good, not just for one firing.
	tw.PlayForward()
	assert.Equal(t, []string{"remover", "remover"}, order)
}

func TestTweener_ListenerMayRemoveItselfMidFiring(t *testing.T) {
	tw := instant()
	var order []string
	var self *Handler
	self = tw.AddOnFinished(func() {
		order = append(order, "self")
		tw.RemoveOnFinished(self)
	}, false)
	tw.AddOnFinished(func() { order = append(order, "after") }, false)

	tw.PlayForward()
	assert.Equal(t, []string{"self", "after"}, order, "removal must not skip the next listener")

	tw.PlayForward()
	assert.Equal(t, []string{"self", "after", "after"}, order)
}

func TestTweener_ReRegisteredListenersFollowNewOnes(t *testing.T) {
	tw := instant()
	var order []string
	tw.AddOnFinished(func() {
		if len(order) == 0 {
			tw.AddOnFinished(func() { order = append(order, "new") }, false)
		}
		order = append(order, "old")
	}, false)

	tw.PlayForward()
	require.Equal(t, []string{"old"}, order)

	// Listeners added during a firing precede re-registered survivors.
	tw.PlayForward()
	assert.Equal(t, []string{"old", "new", "old"}, order)
}

func TestTweener_NestedCompletionIsSuppressed(t *testing.T) {
	other := instant()
	otherFired := 0
	other.AddOnFinished(func() { otherFired++ }, false)

	tw := instant()
	tw.AddOnFinished(func() {
		// Completing another tween while this notification is in
		// flight must not notify its listeners.
		other.PlayForward()
	}, true)

	tw.PlayForward()

	assert.Equal(t, 0, otherFired)
	// The suppressed tween still completed mechanically.
	assert.False(t, other.Enabled())
	assert.InDelta(t, 1.0, other.Factor(), 1e-9)

	// Only the notification was skipped; the next completion fires.
	other.PlayForward()
	assert.Equal(t, 1, otherFired)
}

func TestTweener_CompletionsKeepFiringAfterEarlierOnes(t *testing.T) {
	// The dispatch token must be released when a notification finishes.
	// A token that stays latched after the first completion would
	// silently swallow every later completion in the process.
	first := instant()
	second := instant()
	firstFired := 0
	secondFired := 0
	first.AddOnFinished(func() { firstFired++ }, false)
	second.AddOnFinished(func() { secondFired++ }, false)

	first.PlayForward()
	require.Equal(t, 1, firstFired)
	require.Nil(t, Current(), "token must be clear between notifications")

	second.PlayForward()
	assert.Equal(t, 1, secondFired)
	assert.Nil(t, Current())

	first.PlayForward()
	assert.Equal(t, 2, firstFired)
}

func TestTweener_CurrentIdentifiesFiringTweener(t *testing.T) {
	tw := instant()
	var seen *Tweener
	tw.AddOnFinished(func() { seen = Current() }, true)

	require.Nil(t, Current())
	tw.PlayForward()

	assert.Same(t, tw, seen)
	assert.Nil(t, Current())
}

func TestTweener_LegacySinkInvokedAfterListeners(t *testing.T) {
	tw := instant()
	sink := &recordingSink{}
	tw.EventReceiver = sink
	tw.CallWhenFinished = "OnTweenDone"

	var order []string
	tw.AddOnFinished(func() { order = append(order, "listener") }, false)

	tw.PlayForward()

	require.Len(t, sink.calls, 1)
	assert.Equal(t, "OnTweenDone", sink.calls[0].method)
	assert.Same(t, tw, sink.calls[0].tw)
	assert.Equal(t, []string{"listener"}, order)
}

func TestTweener_LegacySinkSkippedWhenUnconfigured(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(tw *Tweener, sink *recordingSink)
	}{
		{
			name:  "nil receiver",
			setup: func(tw *Tweener, sink *recordingSink) { tw.CallWhenFinished = "OnTweenDone" },
		},
		{
			name:  "empty method name",
			setup: func(tw *Tweener, sink *recordingSink) { tw.EventReceiver = sink },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := instant()
			sink := &recordingSink{}
			tt.setup(tw, sink)

			tw.PlayForward()
			assert.Empty(t, sink.calls)
		})
	}
}
