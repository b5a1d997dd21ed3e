package page

import (
	"fmt"
	"time"
)

// Phase is a step of a page transition.
type Phase int

const (
	Idle Phase = iota
	Exiting
	Entering
)

func (p Phase) String() string {
	switch p {
	case Exiting:
		return "exiting"
	case Entering:
		return "entering"
	default:
		return "idle"
	}
}

// Transition sequences the swap between two pages. The outgoing page
// finishes exiting before the incoming one is shown.
type Transition struct {
	Phase   Phase
	Shown   Page
	Pending Page
}

// Begin requests a transition to target. While exiting, the pending page is
// replaced. While entering, target is queued until the enter completes.
func (t *Transition) Begin(target Page) {
	switch t.Phase {
	case Idle:
		if target == t.Shown {
			return
		}
		t.Pending = target
		t.Phase = Exiting
	case Exiting, Entering:
		t.Pending = target
	}
}

// ExitDone mounts the pending page.
func (t *Transition) ExitDone() {
	if t.Phase != Exiting {
		return
	}
	t.Shown = t.Pending
	t.Phase = Entering
}

// EnterDone settles the transition, or starts the next one if a page was
// requested while entering.
func (t *Transition) EnterDone() {
	if t.Phase != Entering {
		return
	}
	t.Phase = Idle
	if t.Pending != t.Shown {
		t.Begin(t.Pending)
	}
}

// Settle drives the transition to idle.
func (t *Transition) Settle() {
	for t.Phase != Idle {
		t.ExitDone()
		t.EnterDone()
	}
}

// settleDelay is htmx's default settle. The incoming page leaves its start
// position as soon as htmx-added is removed and the CSS transition carries
// the enter duration.
const settleDelay = 20 * time.Millisecond

// SwapSpec is the htmx swap modifier for a page change: the old content is
// held for the exit duration, the new content settles straight away, and the
// window scrolls back to the top.
func SwapSpec(exit time.Duration) string {
	return fmt.Sprintf("innerHTML swap:%dms settle:%dms show:window:top",
		exit.Milliseconds(), settleDelay.Milliseconds())
}
