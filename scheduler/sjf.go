package scheduler

import "github.com/viant/simsched/model"

// sjf picks the ready process with the smallest total lifespan and runs it
// to completion. Ties keep the earliest-enqueued entry: the scan compares
// strictly, so later equal lifespans never replace the first minimum.
type sjf struct {
	base
	fifoArbiter
}

// NewSJF creates the shortest-job-first policy.
func NewSJF() Policy {
	return &sjf{base: base{name: "sjf"}}
}

func (p *sjf) Schedule(s *State) *model.Process {
	if runnable(s.Current) {
		return s.Current
	}
	next := shortestJob(s.Ready)
	if next != nil {
		s.Ready.Remove(next)
	}
	return next
}

func shortestJob(q *model.Queue) *model.Process {
	var best *model.Process
	for _, cand := range q.Snapshot() {
		if best == nil || cand.Lifespan < best.Lifespan {
			best = cand
		}
	}
	return best
}

func init() {
	Register("sjf", NewSJF)
}
