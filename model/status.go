package model

// Status describes the scheduling state of a process. A live process is
// always exactly one of READY, RUNNING or BLOCKED; the dispatch driver and
// the scheduler policies keep the value in lock-step with queue membership.
type Status int

const (
	// StatusReady marks a process eligible to run; it is a member of the
	// ready queue.
	StatusReady Status = iota
	// StatusRunning marks the single process executing this tick; it is a
	// member of no queue.
	StatusRunning
	// StatusBlocked marks a process waiting on a resource; it is a member
	// of that resource's wait queue.
	StatusBlocked
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusBlocked:
		return "blocked"
	}
	return "unknown"
}
