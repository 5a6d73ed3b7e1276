package scheduler

import "github.com/viant/simsched/model"

// prio is static-priority preemptive scheduling: the maximum-priority ready
// process always runs, ties broken by earliest queue position, and a
// running process is preempted whenever any other ready process exists.
//
// Indefinite starvation of low-priority processes is a documented property
// of the plain policy, not a defect; aging and the ceiling protocol exist
// to bound it.
type prio struct {
	base
	prioArbiter
}

// NewPriority creates the static-priority policy.
func NewPriority() Policy {
	return &prio{base: base{name: "prio"}}
}

func (p *prio) Schedule(s *State) *model.Process {
	cur := s.Current
	if runnable(cur) && s.Ready.Empty() {
		return cur
	}
	requeueCurrent(s)
	next := topPriority(s.Ready)
	if next != nil {
		s.Ready.Remove(next)
	}
	return next
}

func init() {
	Register("prio", NewPriority)
}
