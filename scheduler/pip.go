package scheduler

import "github.com/viant/simsched/model"

// pip implements the priority-inheritance protocol: a resource owner whose
// priority is lower than a blocked waiter's temporarily inherits the
// waiter's priority for the duration of ownership, reverting on release.
// Unlike pcp's flat ceiling boost, the owner only ever rises as high as the
// processes it is actually blocking.
type pip struct {
	base
}

// NewPIP creates the priority-inheritance-protocol policy.
func NewPIP() Policy {
	return &pip{base: base{name: "pip"}}
}

func (p *pip) Acquire(s *State, rid int) bool {
	r := s.Resource(rid)
	cur := s.Current
	if r.Owner == nil {
		r.Owner = cur
		return true
	}
	cur.Status = model.StatusBlocked
	r.Waiters.PushBack(cur)
	if r.Owner.Priority < cur.Priority {
		r.Owner.Priority = cur.Priority
	}
	return false
}

func (p *pip) Release(s *State, rid int) {
	releaseAndWake(s, rid, topPriorityWaiter)
	cur := s.Current
	cur.Priority = cur.PriorityBase
	// Re-inherit from the waiters of any resource still held.
	for _, r := range s.Resources {
		if r.Owner != cur {
			continue
		}
		if w := topPriorityWaiter(r.Waiters); w != nil && w.Priority > cur.Priority {
			cur.Priority = w.Priority
		}
	}
}

func (p *pip) Schedule(s *State) *model.Process {
	requeueCurrent(s)
	next := topPriority(s.Ready)
	if next != nil {
		s.Ready.Remove(next)
	}
	return next
}

func init() {
	Register("pip", NewPIP)
}
