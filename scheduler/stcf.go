package scheduler

import "github.com/viant/simsched/model"

// stcf generalises sjf preemptively: every tick the running process is
// compared by remaining time against every ready process, and any ready
// process that can finish strictly sooner takes the CPU immediately.
//
// A displaced process re-enters the ready queue at the tail, so on later
// equal-remaining ties the challenger that has waited longest wins.
type stcf struct {
	base
	fifoArbiter
}

// NewSTCF creates the shortest-time-to-completion-first policy.
func NewSTCF() Policy {
	return &stcf{base: base{name: "stcf"}}
}

func (p *stcf) Schedule(s *State) *model.Process {
	cur := s.Current
	if runnable(cur) {
		challenger := shortestRemaining(s.Ready)
		if challenger == nil || challenger.Remaining() >= cur.Remaining() {
			return cur
		}
		s.Ready.Remove(challenger)
		cur.Status = model.StatusReady
		s.Ready.PushBack(cur)
		return challenger
	}
	next := shortestRemaining(s.Ready)
	if next != nil {
		s.Ready.Remove(next)
	}
	return next
}

// shortestRemaining compares by remaining time rather than total lifespan
// so that entries that already ran compete fairly.
func shortestRemaining(q *model.Queue) *model.Process {
	var best *model.Process
	for _, cand := range q.Snapshot() {
		if best == nil || cand.Remaining() < best.Remaining() {
			best = cand
		}
	}
	return best
}

func init() {
	Register("stcf", NewSTCF)
}
