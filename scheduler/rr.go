package scheduler

import "github.com/viant/simsched/model"

// rr cycles through the ready processes with a fixed quantum of one tick:
// the running process moves to the ready-queue tail before every selection
// and the head of the queue runs next.
type rr struct {
	base
	fifoArbiter
}

// NewRR creates the round-robin policy.
func NewRR() Policy {
	return &rr{base: base{name: "rr"}}
}

func (p *rr) Schedule(s *State) *model.Process {
	requeueCurrent(s)
	return s.Ready.PopFront()
}

func init() {
	Register("rr", NewRR)
}
