package workload

import "github.com/viant/simsched/service/meta"

// Option customises the workload service.
type Option func(s *Service)

// WithMetaService sets the asset loader used to resolve workload URLs.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}
