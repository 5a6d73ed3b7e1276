package dispatch

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/simsched/internal/clock"
	"github.com/viant/simsched/model"
	"github.com/viant/simsched/scheduler"
	"github.com/viant/simsched/service/dao/store"
)

func runWorkload(t *testing.T, policyName string, workload *model.Workload, options ...Option) *Run {
	t.Helper()
	policy, err := scheduler.New(policyName)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	service := New(nil, Config{MaxTicks: 100}, options...)
	run, err := service.Run(context.Background(), workload, policy)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return run
}

func TestService_Run(t *testing.T) {
	testCases := []struct {
		description string
		policy      string
		workload    *model.Workload
		timeline    []string
		completed   map[int]int
	}{
		{
			description: "fcfs runs to completion in arrival order",
			policy:      "fcfs",
			workload: &model.Workload{
				Name: "batch",
				Processes: []*model.ProcessSpec{
					{PID: 1, ForkAt: 0, Lifespan: 3},
					{PID: 2, ForkAt: 0, Lifespan: 2},
				},
			},
			timeline:  []string{"1", "1", "1", "2", "2"},
			completed: map[int]int{1: 3, 2: 5},
		},
		{
			description: "sjf lets the short job jump the queue",
			policy:      "sjf",
			workload: &model.Workload{
				Name: "short-first",
				Processes: []*model.ProcessSpec{
					{PID: 1, ForkAt: 0, Lifespan: 5},
					{PID: 2, ForkAt: 0, Lifespan: 2},
				},
			},
			timeline:  []string{"2", "2", "1", "1", "1", "1", "1"},
			completed: map[int]int{2: 2, 1: 7},
		},
		{
			description: "stcf preempts on a shorter late arrival",
			policy:      "stcf",
			workload: &model.Workload{
				Name: "late-sprint",
				Processes: []*model.ProcessSpec{
					{PID: 1, ForkAt: 0, Lifespan: 5},
					{PID: 2, ForkAt: 1, Lifespan: 2},
				},
			},
			timeline:  []string{"1", "2", "2", "1", "1", "1", "1"},
			completed: map[int]int{2: 3, 1: 7},
		},
		{
			description: "rr alternates with a one-tick quantum",
			policy:      "rr",
			workload: &model.Workload{
				Name: "fair-share",
				Processes: []*model.ProcessSpec{
					{PID: 1, ForkAt: 0, Lifespan: 2},
					{PID: 2, ForkAt: 0, Lifespan: 2},
				},
			},
			timeline:  []string{"1", "2", "1", "2"},
			completed: map[int]int{1: 3, 2: 4},
		},
		{
			description: "prio preempts for a higher late arrival",
			policy:      "prio",
			workload: &model.Workload{
				Name: "vip",
				Processes: []*model.ProcessSpec{
					{PID: 1, ForkAt: 0, Lifespan: 3, Priority: 1},
					{PID: 2, ForkAt: 1, Lifespan: 2, Priority: 5},
				},
			},
			timeline:  []string{"1", "2", "2", "1", "1"},
			completed: map[int]int{2: 3, 1: 5},
		},
		{
			description: "idle slots bridge a fork gap",
			policy:      "fcfs",
			workload: &model.Workload{
				Name: "sparse",
				Processes: []*model.ProcessSpec{
					{PID: 1, ForkAt: 0, Lifespan: 1},
					{PID: 2, ForkAt: 3, Lifespan: 1},
				},
			},
			timeline:  []string{"1", "-", "-", "2"},
			completed: map[int]int{1: 1, 2: 4},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			run := runWorkload(t, testCase.policy, testCase.workload)
			assert.Equal(t, testCase.timeline, run.Timeline)
			assert.Equal(t, testCase.completed, run.Completed)
			assert.Equal(t, len(testCase.timeline), run.Ticks)
		})
	}
}

func TestService_Run_ResourceContention(t *testing.T) {
	workload := &model.Workload{
		Name: "lock-step",
		Processes: []*model.ProcessSpec{
			{PID: 1, ForkAt: 0, Lifespan: 3, Acquire: []*model.ResourceUse{{Resource: 0, At: 0, Duration: 3}}},
			{PID: 2, ForkAt: 0, Lifespan: 3, Acquire: []*model.ResourceUse{{Resource: 0, At: 0, Duration: 3}}},
		},
	}
	// Round-robin would alternate, but pid 2 blocks on its first turn and
	// only wakes when pid 1 releases on completion.
	run := runWorkload(t, "rr", workload)
	assert.Equal(t, []string{"1", "1", "1", "2", "2", "2"}, run.Timeline)
	assert.Equal(t, map[int]int{1: 3, 2: 6}, run.Completed)
}

func TestService_Run_CeilingBlocksPreemption(t *testing.T) {
	workload := &model.Workload{
		Name: "ceiling",
		Processes: []*model.ProcessSpec{
			{PID: 1, ForkAt: 0, Lifespan: 4, Priority: 2, Acquire: []*model.ResourceUse{{Resource: 0, At: 1, Duration: 2}}},
		},
	}
	var priorities []int
	run := runWorkload(t, "pcp", workload, WithObserver(func(tick int, state *scheduler.State) {
		priorities = append(priorities, state.Current.Priority)
	}))
	assert.Equal(t, []string{"1", "1", "1", "1"}, run.Timeline)
	// Boosted to the ceiling for exactly the ownership window.
	assert.Equal(t, []int{2, 10, 10, 2}, priorities)
}

func TestService_Run_InheritanceBeatsInversion(t *testing.T) {
	workload := &model.Workload{
		Name: "inversion",
		Processes: []*model.ProcessSpec{
			{PID: 1, ForkAt: 0, Lifespan: 4, Priority: 1, Acquire: []*model.ResourceUse{{Resource: 0, At: 0, Duration: 3}}},
			{PID: 2, ForkAt: 1, Lifespan: 3, Priority: 3},
			{PID: 3, ForkAt: 1, Lifespan: 2, Priority: 5, Acquire: []*model.ResourceUse{{Resource: 0, At: 0, Duration: 1}}},
		},
	}
	// pid 3 blocks on the resource held by pid 1, which inherits priority 5
	// and finishes its critical section ahead of the medium pid 2. Without
	// inheritance pid 2 would run ticks 1..3 and delay pid 3 indefinitely.
	run := runWorkload(t, "pip", workload)
	assert.Equal(t, []string{"1", "1", "1", "3", "3", "2", "2", "2", "1"}, run.Timeline)
	assert.Equal(t, map[int]int{3: 5, 2: 8, 1: 9}, run.Completed)
}

func TestService_Run_DeadlockAborts(t *testing.T) {
	workload := &model.Workload{
		Name: "deadly-embrace",
		Processes: []*model.ProcessSpec{
			{PID: 1, ForkAt: 0, Lifespan: 2, Acquire: []*model.ResourceUse{
				{Resource: 0, At: 0, Duration: 2},
				{Resource: 1, At: 1, Duration: 1},
			}},
			{PID: 2, ForkAt: 0, Lifespan: 2, Acquire: []*model.ResourceUse{
				{Resource: 1, At: 0, Duration: 2},
				{Resource: 0, At: 1, Duration: 1},
			}},
		},
	}
	policy, err := scheduler.New("rr")
	assert.NoError(t, err)
	service := New(nil, Config{MaxTicks: 50})
	_, err = service.Run(context.Background(), workload, policy)
	assert.ErrorContains(t, err, "exceeded 50 ticks")
}

func TestService_Run_InvalidWorkload(t *testing.T) {
	service := New(nil, Config{})
	policy, err := scheduler.New("fcfs")
	assert.NoError(t, err)

	_, err = service.Run(context.Background(), &model.Workload{Name: "empty"}, policy)
	assert.ErrorContains(t, err, "no processes")

	_, err = service.Run(context.Background(), &model.Workload{
		Name:      "immortal",
		Processes: []*model.ProcessSpec{{PID: 1, Lifespan: 0}},
	}, policy)
	assert.ErrorContains(t, err, "lifespan")
}

func TestService_Run_PersistsRecord(t *testing.T) {
	pinned := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	previous := clock.NowFunc
	clock.NowFunc = func() time.Time { return pinned }
	defer func() { clock.NowFunc = previous }()

	runs := store.New[string, Run](func(r *Run) string { return r.ID })
	policy, err := scheduler.New("fcfs")
	assert.NoError(t, err)
	service := New(runs, Config{})

	workload := &model.Workload{
		Name:      "persisted",
		Processes: []*model.ProcessSpec{{PID: 1, Lifespan: 2}},
	}
	run, err := service.Run(context.Background(), workload, policy)
	assert.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "persisted", run.Workload)
	assert.Equal(t, "fcfs", run.Policy)
	assert.Equal(t, pinned, run.StartedAt)
	assert.Equal(t, pinned, *run.FinishedAt)

	stored, err := runs.Load(context.Background(), run.ID)
	assert.NoError(t, err)
	assert.Equal(t, run, stored)
}

// Every policy must uphold the structural invariants on every tick: at most
// one process on the CPU, disjoint queue membership, statuses consistent
// with location and no process running past its lifespan.
func TestService_Run_Invariants(t *testing.T) {
	workload := func() *model.Workload {
		return &model.Workload{
			Name:        "mixed",
			MaxPriority: 10,
			Processes: []*model.ProcessSpec{
				{PID: 1, ForkAt: 0, Lifespan: 5, Priority: 2, Acquire: []*model.ResourceUse{{Resource: 0, At: 1, Duration: 2}}},
				{PID: 2, ForkAt: 1, Lifespan: 4, Priority: 6, Acquire: []*model.ResourceUse{{Resource: 0, At: 0, Duration: 2}}},
				{PID: 3, ForkAt: 2, Lifespan: 3, Priority: 4},
			},
		}
	}
	for _, name := range scheduler.Names() {
		t.Run(name, func(t *testing.T) {
			run := runWorkload(t, name, workload(), WithObserver(func(tick int, state *scheduler.State) {
				seen := map[*model.Process]string{}
				note := func(p *model.Process, where string) {
					if prior, ok := seen[p]; ok {
						t.Fatalf("tick %d: pid %d both %s and %s", tick, p.PID, prior, where)
					}
					seen[p] = where
				}
				if cur := state.Current; cur != nil {
					note(cur, "running")
					assert.Equal(t, model.StatusRunning, cur.Status)
					assert.LessOrEqual(t, cur.Age, cur.Lifespan)
				}
				for _, p := range state.Ready.Snapshot() {
					note(p, "ready")
					assert.Equal(t, model.StatusReady, p.Status)
				}
				for _, r := range state.Resources {
					for _, p := range r.Waiters.Snapshot() {
						note(p, "waiting")
						assert.Equal(t, model.StatusBlocked, p.Status)
					}
				}
			}))

			// The CPU share of each process equals its lifespan exactly.
			shares := map[string]int{}
			for _, slot := range run.Timeline {
				shares[slot]++
			}
			for _, spec := range workload().Processes {
				assert.Equal(t, spec.Lifespan, shares[strconv.Itoa(spec.PID)], "pid %d", spec.PID)
			}
		})
	}
}
