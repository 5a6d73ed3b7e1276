package simsched

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/simsched/scheduler"
	"github.com/viant/simsched/service/dao/store"
	"github.com/viant/simsched/service/dispatch"
	"github.com/viant/simsched/service/meta"
	"github.com/viant/simsched/service/workload"
)

// Service is the engine façade: it wires the workload loader, the dispatch
// driver and the run store behind a single Runtime handle.
type Service struct {
	runtime         *Runtime
	config          *Config
	metaService     *meta.Service
	metaBaseURL     string
	metaFsOptions   []storage.Option
	dispatchOptions []dispatch.Option
	customPolicies  map[string]scheduler.Factory
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	for name, factory := range s.customPolicies {
		scheduler.Register(name, factory)
	}
	s.runtime.dispatcher = dispatch.New(s.runtime.runDAO, s.config.Dispatch, s.dispatchOptions...)
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.runtime.workloadDAO == nil {
		s.runtime.workloadDAO = workload.New(workload.WithMetaService(s.metaService))
	}
	if s.runtime.runDAO == nil {
		s.runtime.runDAO = store.New[string, dispatch.Run](func(r *dispatch.Run) string { return r.ID })
	}
	s.runtime.defaultPolicy = s.config.DefaultPolicy
}

// Runtime returns the runtime handle used to load workloads and execute
// runs.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// RegisterPolicy makes a custom scheduling policy available by name.
func (s *Service) RegisterPolicy(name string, factory scheduler.Factory) {
	scheduler.Register(name, factory)
}

// New creates the engine service.
func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}}
	ret.init(options)
	return ret
}
