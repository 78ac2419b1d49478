package game

import "time"

// roomTimers is the set of scheduled callbacks armed for one room: at most
// one selection timer or one expiry timer plus hint checkpoints, and one
// grace timer between rounds.
type roomTimers struct {
	selection *time.Timer
	expiry    *time.Timer
	hints     []*time.Timer
	grace     *time.Timer
}

func (t *roomTimers) stopAll() {
	if t.selection != nil {
		t.selection.Stop()
	}
	if t.expiry != nil {
		t.expiry.Stop()
	}
	for _, h := range t.hints {
		h.Stop()
	}
	if t.grace != nil {
		t.grace.Stop()
	}
}

// cancelTimers stops and forgets every timer armed for the room code.
// A stopped timer that already fired is harmless: its callback re-validates
// the room and stamp before acting.
func (r *Registry) cancelTimers(code string) {
	r.timersMu.Lock()
	defer r.timersMu.Unlock()
	if t, ok := r.timers[code]; ok {
		t.stopAll()
		delete(r.timers, code)
	}
}

// setTimers replaces the room's timer set, cancelling whatever was armed
// before. Timers deliberately hold only the room code and a stamp token, not
// a room reference: on firing they re-fetch the room and compare stamps, so a
// room deleted or a round advanced between scheduling and firing turns the
// callback into a no-op.
func (r *Registry) setTimers(code string, t *roomTimers) {
	r.timersMu.Lock()
	defer r.timersMu.Unlock()
	if old, ok := r.timers[code]; ok {
		old.stopAll()
	}
	r.timers[code] = t
}

func (r *Registry) armSelectionTimer(code string, stamp int64) {
	r.setTimers(code, &roomTimers{
		selection: time.AfterFunc(r.SelectionTimeout, func() {
			r.onSelectionTimeout(code, stamp)
		}),
	})
}

func (r *Registry) armDrawingTimers(code string, stamp int64, duration time.Duration) {
	t := &roomTimers{
		expiry: time.AfterFunc(duration, func() {
			r.onRoundExpiry(code, stamp)
		}),
	}
	for _, frac := range hintCheckpoints {
		frac := frac
		delay := time.Duration(float64(duration) * frac)
		t.hints = append(t.hints, time.AfterFunc(delay, func() {
			r.onHintCheckpoint(code, stamp, frac)
		}))
	}
	r.setTimers(code, t)
}

func (r *Registry) armGraceTimer(code string, stamp int64) {
	r.setTimers(code, &roomTimers{
		grace: time.AfterFunc(r.GraceDelay, func() {
			r.onGraceElapsed(code, stamp)
		}),
	})
}
