package tween

// dispatcher owns the process-wide completion token. Exactly one
// completion notification may be in flight at a time; a completion
// reached while the token is held (a nested completion triggered from
// inside a listener) is suppressed entirely, not queued.
type dispatcher struct {
	current *Tweener
}

// completions is the single dispatch token shared by all tweeners.
var completions dispatcher

// Current returns the tweener whose completion notification is firing,
// or nil outside a notification. Listener callbacks use it to identify
// the tween that finished.
func Current() *Tweener {
	return completions.current
}

// fire runs t's completion notification under the token. The token is
// released when the full notification sequence has run, including the
// legacy message sink; a panicking listener does not leave it latched.
func (d *dispatcher) fire(t *Tweener) {
	if d.current != nil {
		return
	}
	d.current = t
	defer func() { d.current = nil }()

	t.notifyFinished()
}
