package state

import "context"

// Latest tracks the most recent of a series of superseding requests.
// Starting a new one cancels the previous context, and IsCurrent lets the
// caller drop answers that arrive for an older ticket.
type Latest struct {
	seq    uint64
	cancel context.CancelFunc
}

func (l *Latest) Next(parent context.Context) (context.Context, uint64) {
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	l.seq++
	l.cancel = cancel
	return ctx, l.seq
}

func (l *Latest) IsCurrent(seq uint64) bool {
	return seq != 0 && seq == l.seq
}

// Done releases the context of seq once its answer has been handled
func (l *Latest) Done(seq uint64) {
	if seq == l.seq && l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Cancel aborts whatever is in flight; no ticket handed out so far stays current.
func (l *Latest) Cancel() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
}
