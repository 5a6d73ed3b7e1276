package model

import "fmt"

// DefaultMaxPriority is the system ceiling used when a workload does not
// set one. The priority-ceiling protocol raises owners to this level.
const DefaultMaxPriority = 10

// Workload declaratively describes a simulation scenario: which processes
// to fork, when, with what lifespan and priority, and which resources they
// use at which point of their execution. Workloads are typically defined in
// YAML and loaded through the workload service.
type Workload struct {
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	MaxPriority int            `json:"maxPriority,omitempty" yaml:"maxPriority,omitempty"`
	Resources   int            `json:"resources,omitempty" yaml:"resources,omitempty"`
	Processes   []*ProcessSpec `json:"processes" yaml:"processes"`

	// Expect optionally pins the run timeline for verification: one entry
	// per tick, a PID in decimal or "-" for an idle tick.
	Expect []string `json:"expect,omitempty" yaml:"expect,omitempty"`
}

// ProcessSpec describes a single process the fork mechanism creates.
type ProcessSpec struct {
	PID      int            `json:"pid" yaml:"pid"`
	ForkAt   int            `json:"forkAt" yaml:"forkAt"`
	Lifespan int            `json:"lifespan" yaml:"lifespan"`
	Priority int            `json:"priority" yaml:"priority"`
	Acquire  []*ResourceUse `json:"acquire,omitempty" yaml:"acquire,omitempty"`
}

// ResourceUse describes one critical section: the process acquires Resource
// once its age reaches At and releases it after Duration executed ticks.
type ResourceUse struct {
	Resource int `json:"resource" yaml:"resource"`
	At       int `json:"at" yaml:"at"`
	Duration int `json:"duration" yaml:"duration"`
}

// End returns the age at which the resource is released.
func (u *ResourceUse) End() int {
	return u.At + u.Duration
}

// Fork materialises the process record for this spec: age zero, READY, the
// assigned priority as both current and baseline.
func (s *ProcessSpec) Fork() *Process {
	return &Process{
		PID:          s.PID,
		Status:       StatusReady,
		Lifespan:     s.Lifespan,
		Priority:     s.Priority,
		PriorityBase: s.Priority,
	}
}

// Validate returns all structural issues found in the workload definition.
func (w *Workload) Validate() []error {
	var issues []error
	if len(w.Processes) == 0 {
		issues = append(issues, fmt.Errorf("workload %q has no processes", w.Name))
	}
	maxPriority := w.MaxPriority
	if maxPriority == 0 {
		maxPriority = DefaultMaxPriority
	}
	seen := map[int]bool{}
	for _, spec := range w.Processes {
		if seen[spec.PID] {
			issues = append(issues, fmt.Errorf("duplicate pid %d", spec.PID))
		}
		seen[spec.PID] = true
		if spec.Lifespan <= 0 {
			issues = append(issues, fmt.Errorf("pid %d: lifespan must be positive", spec.PID))
		}
		if spec.ForkAt < 0 {
			issues = append(issues, fmt.Errorf("pid %d: forkAt must not be negative", spec.PID))
		}
		if spec.Priority < 0 || spec.Priority > maxPriority {
			issues = append(issues, fmt.Errorf("pid %d: priority %d outside 0..%d", spec.PID, spec.Priority, maxPriority))
		}
		for _, use := range spec.Acquire {
			if use.Resource < 0 || (w.Resources > 0 && use.Resource >= w.Resources) {
				issues = append(issues, fmt.Errorf("pid %d: unknown resource %d", spec.PID, use.Resource))
			}
			if use.At < 0 || use.Duration <= 0 {
				issues = append(issues, fmt.Errorf("pid %d: resource %d use needs at >= 0 and duration > 0", spec.PID, use.Resource))
			}
			if use.End() > spec.Lifespan {
				issues = append(issues, fmt.Errorf("pid %d: resource %d held past lifespan", spec.PID, use.Resource))
			}
		}
	}
	return issues
}

// Init fills derived defaults: the ceiling priority and, when unset, the
// resource-table size inferred from the highest referenced resource.
func (w *Workload) Init() {
	if w.MaxPriority == 0 {
		w.MaxPriority = DefaultMaxPriority
	}
	if w.Resources == 0 {
		for _, spec := range w.Processes {
			for _, use := range spec.Acquire {
				if use.Resource >= w.Resources {
					w.Resources = use.Resource + 1
				}
			}
		}
	}
}
