package scheduler

import (
	"fmt"

	"github.com/viant/simsched/model"
)

// State aggregates the shared mutable structures every policy call operates
// on: the currently running process, the ready queue and the resource
// table. It is passed explicitly into each call instead of living in
// package globals so that multiple policies can be exercised in isolation.
type State struct {
	// Current is the process that ran last tick, or nil when the CPU was
	// idle. The dispatch driver assigns it from the Schedule result.
	Current *model.Process

	// Ready holds the READY processes in arrival order. Policies may
	// reorder or splice it but never duplicate an entry.
	Ready *model.Queue

	Resources []*model.Resource

	// MaxPriority is the system ceiling the priority-ceiling protocol
	// raises resource owners to.
	MaxPriority int
}

// NewState creates a simulation state with an empty ready queue and a free
// resource table of the given size.
func NewState(resources, maxPriority int) *State {
	if maxPriority <= 0 {
		maxPriority = model.DefaultMaxPriority
	}
	return &State{
		Ready:       model.NewQueue(),
		Resources:   model.NewResourceTable(resources),
		MaxPriority: maxPriority,
	}
}

// Resource returns the record for rid. Resource identities are fixed by the
// workload loader, so an out-of-range id is a caller bug and panics.
func (s *State) Resource(rid int) *model.Resource {
	if rid < 0 || rid >= len(s.Resources) {
		panic(fmt.Sprintf("scheduler: unknown resource %d", rid))
	}
	return s.Resources[rid]
}

// OwnsAny reports whether p currently owns at least one resource.
func (s *State) OwnsAny(p *model.Process) bool {
	for _, r := range s.Resources {
		if r.Owner == p {
			return true
		}
	}
	return false
}
