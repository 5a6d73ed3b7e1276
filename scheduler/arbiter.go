package scheduler

import (
	"fmt"

	"github.com/viant/simsched/model"
)

// acquireFIFO is the default arbitration shared by the non-priority
// policies: a free resource is granted to the caller immediately, otherwise
// the caller blocks at the tail of the wait queue, preserving request
// order.
func acquireFIFO(s *State, rid int) bool {
	r := s.Resource(rid)
	if r.Owner == nil {
		r.Owner = s.Current
		return true
	}
	cur := s.Current
	cur.Status = model.StatusBlocked
	r.Waiters.PushBack(cur)
	return false
}

// releaseAndWake clears ownership held by the current process and wakes the
// single waiter chosen by pick, moving it from the wait queue to the
// ready-queue tail. Releasing a resource one does not own is a contract
// violation and panics.
func releaseAndWake(s *State, rid int, pick func(*model.Queue) *model.Process) {
	r := s.Resource(rid)
	if r.Owner != s.Current {
		panic(fmt.Sprintf("scheduler: resource %d released by process %d which does not own it", rid, pid(s.Current)))
	}
	r.Owner = nil
	waiter := pick(r.Waiters)
	if waiter == nil {
		return
	}
	if waiter.Status != model.StatusBlocked {
		panic(fmt.Sprintf("scheduler: waking process %d with status %v", waiter.PID, waiter.Status))
	}
	r.Waiters.Remove(waiter)
	waiter.Status = model.StatusReady
	s.Ready.PushBack(waiter)
}

// oldestWaiter selects the head of the wait queue (FCFS order).
func oldestWaiter(q *model.Queue) *model.Process {
	if q.Empty() {
		return nil
	}
	return q.At(0)
}

// topPriorityWaiter selects the maximum-priority waiter; a linear scan
// keeps the first maximal value, so ties resolve to the earliest position.
func topPriorityWaiter(q *model.Queue) *model.Process {
	var best *model.Process
	for _, cand := range q.Snapshot() {
		if best == nil || cand.Priority > best.Priority {
			best = cand
		}
	}
	return best
}

// fifoArbiter grants resources in request order.
type fifoArbiter struct{}

func (fifoArbiter) Acquire(s *State, rid int) bool {
	return acquireFIFO(s, rid)
}

func (fifoArbiter) Release(s *State, rid int) {
	releaseAndWake(s, rid, oldestWaiter)
}

// prioArbiter blocks like the default arbitration but wakes the
// highest-priority waiter on release.
type prioArbiter struct{}

func (prioArbiter) Acquire(s *State, rid int) bool {
	return acquireFIFO(s, rid)
}

func (prioArbiter) Release(s *State, rid int) {
	releaseAndWake(s, rid, topPriorityWaiter)
}

// runnable reports whether the current process may keep the CPU this tick:
// it exists, was not just blocked by a failed acquire, and has remaining
// life.
func runnable(cur *model.Process) bool {
	return cur != nil && cur.Status != model.StatusBlocked && !cur.Completed()
}

// requeueCurrent moves a still-runnable current process back to the
// ready-queue tail, the round-robin embedding shared by the preemptive
// policies.
func requeueCurrent(s *State) {
	if !runnable(s.Current) {
		return
	}
	s.Current.Status = model.StatusReady
	s.Ready.PushBack(s.Current)
}

// topPriority selects the maximum-priority ready process, ties broken by
// earliest queue position (the scan keeps the first maximum found).
func topPriority(q *model.Queue) *model.Process {
	var best *model.Process
	for _, cand := range q.Snapshot() {
		if best == nil || cand.Priority > best.Priority {
			best = cand
		}
	}
	return best
}

func pid(p *model.Process) int {
	if p == nil {
		return -1
	}
	return p.PID
}
