package scheduler

import "github.com/viant/simsched/model"

// pcp implements the priority-ceiling protocol: whoever owns a resource
// runs at the system maximum priority for the duration of ownership, so a
// resource holder cannot be preempted by any other ready process and
// priority-inversion delay is bounded by one critical section. Priority
// changes only through ownership transitions, never through waiting time.
type pcp struct {
	base
}

// NewPCP creates the priority-ceiling-protocol policy.
func NewPCP() Policy {
	return &pcp{base: base{name: "pcp"}}
}

func (p *pcp) Acquire(s *State, rid int) bool {
	r := s.Resource(rid)
	if r.Owner == nil {
		r.Owner = s.Current
		r.Owner.Priority = s.MaxPriority
		return true
	}
	cur := s.Current
	cur.Status = model.StatusBlocked
	r.Waiters.PushBack(cur)
	return false
}

func (p *pcp) Release(s *State, rid int) {
	releaseAndWake(s, rid, topPriorityWaiter)
	// The ceiling drops only once the caller holds nothing else, so the
	// priority-equals-maximum invariant survives nested ownership.
	if !s.OwnsAny(s.Current) {
		s.Current.Priority = s.Current.PriorityBase
	}
}

func (p *pcp) Schedule(s *State) *model.Process {
	requeueCurrent(s)
	next := topPriority(s.Ready)
	if next != nil {
		s.Ready.Remove(next)
	}
	return next
}

func init() {
	Register("pcp", NewPCP)
}
