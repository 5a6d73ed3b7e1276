package model

// Process is the passive record of a simulated process. Records are created
// by the workload fork mechanism and destroyed by the dispatch driver once
// Age reaches Lifespan; scheduler policies only mutate Status, Priority and
// queue membership, never identity or lifetime fields.
type Process struct {
	PID      int    `json:"pid" yaml:"pid"`
	Status   Status `json:"status" yaml:"-"`
	Age      int    `json:"age" yaml:"-"`
	Lifespan int    `json:"lifespan" yaml:"lifespan"`

	// Priority is the current, mutable scheduling priority. PriorityBase
	// keeps the immutable value assigned at fork time so that aging credit
	// and ceiling/inheritance boosts can be reverted exactly.
	Priority     int `json:"priority" yaml:"priority"`
	PriorityBase int `json:"priorityBase" yaml:"-"`
}

// Remaining returns the number of ticks the process still needs to run
// before it completes naturally.
func (p *Process) Remaining() int {
	return p.Lifespan - p.Age
}

// Completed reports whether the process has exhausted its lifespan. A
// completed process is eligible for retirement and must never be scheduled
// again.
func (p *Process) Completed() bool {
	return p.Age >= p.Lifespan
}
