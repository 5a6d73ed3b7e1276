package scheduler

import (
	"fmt"
	"sort"
	"sync"

	"github.com/viant/simsched/model"
)

// Policy is the scheduling decision interface the dispatch driver holds a
// single polymorphic handle to, chosen at startup and never mixed mid-run.
//
// Schedule is called once per tick and returns the process to run this
// tick, or nil for an idle tick. Acquire is called when the currently
// running process (s.Current) requests a resource; a false return means the
// caller has been blocked and the driver must immediately solicit a new
// Schedule decision. Release is called when the owning process voluntarily
// frees a resource and may wake exactly one waiter.
type Policy interface {
	Name() string
	Initialize(s *State) error
	Schedule(s *State) *model.Process
	Acquire(s *State, rid int) bool
	Release(s *State, rid int)
	Finalize(s *State)
}

// Factory creates a fresh policy instance. Policies may carry per-run
// state, so a new instance is minted for every run.
type Factory func() Policy

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a policy factory available under the given name,
// overwriting any previous registration. Built-in policies self-register;
// host applications can add their own before starting a run.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// New returns a fresh instance of the named policy.
func New(name string) (Policy, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("scheduler: unknown policy %q", name)
	}
	return factory(), nil
}

// Names lists the registered policy names in lexical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// base supplies the policy name and the no-op lifecycle hooks shared by the
// built-in policies.
type base struct {
	name string
}

func (b *base) Name() string            { return b.name }
func (b *base) Initialize(*State) error { return nil }
func (b *base) Finalize(*State)         {}
