package tween

// Callback is a completion listener. It receives no arguments; the
// firing tweener is available through Current for the duration of the
// notification.
type Callback func()

// Handler is a registered completion listener entry. The pointer itself
// is the registration handle used for removal.
type Handler struct {
	fn      Callback
	oneShot bool
}

// OneShot reports whether the handler is dropped after its first firing.
func (h *Handler) OneShot() bool {
	return h.oneShot
}

// removeHandler deletes h from list by identity, preserving order.
func removeHandler(list *[]*Handler, h *Handler) bool {
	for i, e := range *list {
		if e == h {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
