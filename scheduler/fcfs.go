package scheduler

import "github.com/viant/simsched/model"

// fcfs runs every process to completion in arrival order. Non-preemptive:
// the running process keeps the CPU until it completes or blocks.
type fcfs struct {
	base
	fifoArbiter
}

// NewFCFS creates the first-come-first-served policy.
func NewFCFS() Policy {
	return &fcfs{base: base{name: "fcfs"}}
}

func (p *fcfs) Schedule(s *State) *model.Process {
	if runnable(s.Current) {
		return s.Current
	}
	return s.Ready.PopFront()
}

func init() {
	Register("fcfs", NewFCFS)
}
