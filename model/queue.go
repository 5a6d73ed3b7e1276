package model

import "fmt"

// Queue is an ordered collection of process references backing both the
// ready queue and the per-resource wait queues. Membership is structural:
// processes carry no embedded links, so a record can never be threaded into
// two queues at once by accident, and every relocation has to remove the
// process from its previous queue before inserting it elsewhere.
//
// Inserting a process that is already a member is a scheduler bug, not a
// recoverable condition, and panics with diagnostic context.
type Queue struct {
	items []*Process
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// PushBack appends p at the tail, preserving arrival order.
func (q *Queue) PushBack(p *Process) {
	if p == nil {
		panic("queue: push of nil process")
	}
	if q.Contains(p) {
		panic(fmt.Sprintf("queue: process %d is already enqueued", p.PID))
	}
	q.items = append(q.items, p)
}

// PopFront removes and returns the head of the queue, or nil when empty.
func (q *Queue) PopFront() *Process {
	if len(q.items) == 0 {
		return nil
	}
	head := q.items[0]
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = nil
	q.items = q.items[:len(q.items)-1]
	return head
}

// Remove detaches p from the queue, keeping the relative order of the
// remaining entries. It reports whether p was a member.
func (q *Queue) Remove(p *Process) bool {
	for i, item := range q.items {
		if item == p {
			copy(q.items[i:], q.items[i+1:])
			q.items[len(q.items)-1] = nil
			q.items = q.items[:len(q.items)-1]
			return true
		}
	}
	return false
}

// MoveToBack relocates an existing member to the tail. Calling it on a
// non-member panics, as that indicates a queue-discipline violation.
func (q *Queue) MoveToBack(p *Process) {
	if !q.Remove(p) {
		panic(fmt.Sprintf("queue: process %d is not a member", p.PID))
	}
	q.items = append(q.items, p)
}

// Contains reports whether p is a member of the queue.
func (q *Queue) Contains(p *Process) bool {
	for _, item := range q.items {
		if item == p {
			return true
		}
	}
	return false
}

// Len returns the number of enqueued processes.
func (q *Queue) Len() int {
	return len(q.items)
}

// Empty reports whether the queue holds no processes.
func (q *Queue) Empty() bool {
	return len(q.items) == 0
}

// At returns the process at position i (0 == head).
func (q *Queue) At(i int) *Process {
	return q.items[i]
}

// Snapshot returns a copy of the current ordering so that selection logic
// can scan without risking mutation of the queue mid-iteration.
func (q *Queue) Snapshot() []*Process {
	out := make([]*Process, len(q.items))
	copy(out, q.items)
	return out
}
