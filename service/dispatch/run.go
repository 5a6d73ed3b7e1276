package dispatch

import "time"

// Run is the persisted record of one simulation: the per-tick timeline (a
// PID in decimal, or IdleSlot) plus completion ticks per process.
type Run struct {
	ID       string   `json:"id"`
	Workload string   `json:"workload"`
	Policy   string   `json:"policy"`
	Ticks    int      `json:"ticks"`
	Timeline []string `json:"timeline"`

	// Completed maps PID to the tick at which the process retired.
	Completed map[int]int `json:"completed"`

	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}
