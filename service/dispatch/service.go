// Package dispatch drives the tick loop of a simulation run: it forks
// processes when the workload says so, solicits one scheduling decision per
// tick, issues resource acquisitions and releases on behalf of the running
// process, ages it and retires it once its lifespan is exhausted.
package dispatch

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/viant/simsched/internal/clock"
	"github.com/viant/simsched/model"
	"github.com/viant/simsched/scheduler"
	"github.com/viant/simsched/service/dao"
	"github.com/viant/simsched/tracing"
)

// IdleSlot marks a tick on which no process ran.
const IdleSlot = "-"

// Config represents dispatch service configuration.
type Config struct {
	// MaxTicks aborts runs that never terminate, e.g. workloads that
	// deadlock on a resource cycle.
	MaxTicks int `json:"maxTicks" yaml:"maxTicks"`
}

// DefaultConfig returns the default dispatch configuration.
func DefaultConfig() Config {
	return Config{MaxTicks: 10000}
}

// Observer is invoked once per tick after the scheduling decision has been
// applied; reporters hook it to dump status. It must treat the state as
// read-only.
type Observer func(tick int, state *scheduler.State)

// Service executes workloads under a scheduling policy.
type Service struct {
	config   Config
	runs     dao.Service[string, Run]
	observer Observer
}

// New creates a dispatch service persisting run records through runs (nil
// disables persistence).
func New(runs dao.Service[string, Run], config Config, options ...Option) *Service {
	if config.MaxTicks <= 0 {
		config.MaxTicks = DefaultConfig().MaxTicks
	}
	ret := &Service{config: config, runs: runs}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Run simulates the workload to completion under the supplied policy and
// returns the recorded run.
func (s *Service) Run(ctx context.Context, workload *model.Workload, policy scheduler.Policy) (run *Run, err error) {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("dispatch.Run %s", workload.Name), "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()

	workload.Init()
	if issues := workload.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	state := scheduler.NewState(workload.Resources, workload.MaxPriority)
	if err = policy.Initialize(state); err != nil {
		return nil, fmt.Errorf("failed to initialize policy %s: %w", policy.Name(), err)
	}

	run = &Run{
		ID:        uuid.New().String(),
		Workload:  workload.Name,
		Policy:    policy.Name(),
		Completed: make(map[int]int),
		StartedAt: clock.Now(),
	}
	span.WithAttributes(map[string]string{"run.id": run.ID, "policy": policy.Name()})

	specs := make(map[*model.Process]*model.ProcessSpec)
	forked, live := 0, 0

	for tick := 0; ; tick++ {
		if tick >= s.config.MaxTicks {
			return nil, fmt.Errorf("workload %q under policy %s exceeded %d ticks", workload.Name, policy.Name(), s.config.MaxTicks)
		}

		// Fork arrivals in definition order, ready-queue tail.
		for _, spec := range workload.Processes {
			if spec.ForkAt != tick {
				continue
			}
			process := spec.Fork()
			specs[process] = spec
			state.Ready.PushBack(process)
			forked++
			live++
		}

		// The process that ran last tick first frees expired holds, then
		// retires once its lifespan is exhausted; it is never rescheduled.
		if cur := state.Current; cur != nil {
			releaseExpired(state, policy, cur, specs[cur])
			if cur.Completed() {
				run.Completed[cur.PID] = tick
				state.Current = nil
				live--
			}
		}
		if forked == len(workload.Processes) && live == 0 {
			break
		}

		// One decision per tick; a failed acquire blocks the candidate and
		// immediately solicits a replacement within the same tick.
		next := policy.Schedule(state)
		for next != nil {
			state.Current = next
			next.Status = model.StatusRunning
			rid, pending := pendingAcquire(state, next, specs[next])
			if !pending {
				break
			}
			if !policy.Acquire(state, rid) {
				next = policy.Schedule(state)
			}
		}
		state.Current = next

		if next == nil {
			run.Timeline = append(run.Timeline, IdleSlot)
		} else {
			next.Age++
			run.Timeline = append(run.Timeline, strconv.Itoa(next.PID))
		}
		if s.observer != nil {
			s.observer(tick, state)
		}
	}

	policy.Finalize(state)
	run.Ticks = len(run.Timeline)
	finished := clock.Now()
	run.FinishedAt = &finished
	if s.runs != nil {
		if err = s.runs.Save(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to save run %s: %w", run.ID, err)
		}
	}
	return run, nil
}

// pendingAcquire returns a resource the process needs at its current age
// but does not own yet. Resources are requested one at a time.
func pendingAcquire(state *scheduler.State, process *model.Process, spec *model.ProcessSpec) (int, bool) {
	for _, use := range spec.Acquire {
		if process.Age < use.At || process.Age >= use.End() {
			continue
		}
		if state.Resource(use.Resource).Owner == process {
			continue
		}
		return use.Resource, true
	}
	return 0, false
}

// releaseExpired frees every resource whose hold window ended at the
// process's current age.
func releaseExpired(state *scheduler.State, policy scheduler.Policy, process *model.Process, spec *model.ProcessSpec) {
	for _, use := range spec.Acquire {
		if use.End() != process.Age {
			continue
		}
		if state.Resource(use.Resource).Owner != process {
			continue
		}
		policy.Release(state, use.Resource)
	}
}
