package notify

// WakeSignal nudges the outbox worker after new jobs are enqueued.
// Wakes coalesce while the worker is busy.
type WakeSignal struct {
	ch chan struct{}
}

func NewWakeSignal() *WakeSignal {
	return &WakeSignal{ch: make(chan struct{}, 1)}
}

func (w *WakeSignal) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

func (w *WakeSignal) C() <-chan struct{} {
	return w.ch
}
