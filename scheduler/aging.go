package scheduler

import "github.com/viant/simsched/model"

// aging bounds starvation of the static-priority policy: every tick, before
// selection, each ready-queue member has its priority raised by one, so a
// perpetually passed-over process rises monotonically until it wins. The
// winner's priority resets to its baseline the instant it is selected -
// aging credit is consumed exactly once per scheduling turn and never
// accumulates across runs.
type aging struct {
	base
	prioArbiter
}

// NewAging creates the priority-with-aging policy.
func NewAging() Policy {
	return &aging{base: base{name: "aging"}}
}

func (p *aging) Schedule(s *State) *model.Process {
	for _, waiting := range s.Ready.Snapshot() {
		waiting.Priority++
	}
	requeueCurrent(s)
	next := topPriority(s.Ready)
	if next != nil {
		s.Ready.Remove(next)
		next.Priority = next.PriorityBase
	}
	return next
}

func init() {
	Register("aging", NewAging)
}
