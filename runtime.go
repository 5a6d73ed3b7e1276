package simsched

import (
	"context"
	"fmt"

	"github.com/viant/simsched/model"
	"github.com/viant/simsched/scheduler"
	"github.com/viant/simsched/service/dao"
	"github.com/viant/simsched/service/dispatch"
	"github.com/viant/simsched/service/reporter"
	"github.com/viant/simsched/service/workload"
)

// Runtime represents the simulation engine runtime.
type Runtime struct {
	workloadDAO   *workload.Service
	dispatcher    *dispatch.Service
	runDAO        dao.Service[string, dispatch.Run]
	defaultPolicy string
}

// LoadWorkload loads a workload definition from the given URL.
func (r *Runtime) LoadWorkload(ctx context.Context, location string) (*model.Workload, error) {
	return r.workloadDAO.Load(ctx, location)
}

// DecodeYAMLWorkload decodes an in-memory workload definition.
func (r *Runtime) DecodeYAMLWorkload(data []byte) (*model.Workload, error) {
	return r.workloadDAO.DecodeYAML(data)
}

// Run simulates the workload under the named policy (the configured
// default when empty) and returns the recorded run.
func (r *Runtime) Run(ctx context.Context, w *model.Workload, policyName string) (*dispatch.Run, error) {
	if policyName == "" {
		policyName = r.defaultPolicy
	}
	policy, err := scheduler.New(policyName)
	if err != nil {
		return nil, err
	}
	return r.dispatcher.Run(ctx, w, policy)
}

// GetRun retrieves a previously recorded run by ID.
func (r *Runtime) GetRun(ctx context.Context, runID string) (*dispatch.Run, error) {
	return r.runDAO.Load(ctx, runID)
}

// ListRuns returns all recorded runs in execution order.
func (r *Runtime) ListRuns(ctx context.Context) ([]*dispatch.Run, error) {
	return r.runDAO.List(ctx)
}

// VerifyRun checks the run timeline against the workload expectation and
// returns an error carrying a unified diff on mismatch.
func (r *Runtime) VerifyRun(run *dispatch.Run, w *model.Workload) error {
	if diff := reporter.Verify(run, w.Expect); diff != "" {
		return fmt.Errorf("timeline mismatch for workload %q under %s:\n%s", w.Name, run.Policy, diff)
	}
	return nil
}

// Policies lists the registered scheduling policy names.
func (r *Runtime) Policies() []string {
	return scheduler.Names()
}
