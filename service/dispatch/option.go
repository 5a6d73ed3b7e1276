package dispatch

// Option customises the dispatch service.
type Option func(s *Service)

// WithObserver installs a per-tick observer, typically a status dumper.
func WithObserver(observer Observer) Option {
	return func(s *Service) {
		s.observer = observer
	}
}
