package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/simsched/model"
)

func TestSTCF_PreemptsOnSmallerRemaining(t *testing.T) {
	policy := NewSTCF()
	s := NewState(0, 10)
	s.Ready.PushBack(newProcess(1, 5, 0))

	assert.Equal(t, []int{1}, timeline(policy, s, 1))

	// A fork with remaining 2 beats the current remaining 4 immediately.
	s.Ready.PushBack(newProcess(2, 2, 0))
	assert.Equal(t, []int{2, 2, 1, 1, 1, 1}, timeline(policy, s, 6))
}

func TestSTCF_NoPreemptionOnEqualRemaining(t *testing.T) {
	policy := NewSTCF()
	s := NewState(0, 10)
	s.Ready.PushBack(newProcess(1, 3, 0))

	assert.Equal(t, []int{1}, timeline(policy, s, 1))

	// Equal remaining time never displaces the running process.
	s.Ready.PushBack(newProcess(2, 2, 0))
	assert.Equal(t, []int{1, 1}, timeline(policy, s, 2))
}

func TestSTCF_DisplacedProcessReentersAtTail(t *testing.T) {
	policy := NewSTCF()
	s := NewState(0, 10)
	running := newProcess(1, 5, 0)
	running.Age = 2 // remaining 3
	running.Status = model.StatusRunning
	s.Current = running
	s.Ready.PushBack(newProcess(3, 3, 0)) // remaining 3
	s.Ready.PushBack(newProcess(2, 2, 0)) // remaining 2, preempts

	// After pid 2 wins, pid 1 sits behind pid 3; on the equal-remaining
	// tie that follows, the earlier queue entry (pid 3) runs first.
	assert.Equal(t, []int{2, 2, 3, 3, 3, 1, 1, 1}, timeline(policy, s, 8))
}
