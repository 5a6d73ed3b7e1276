// Package meta loads URL-addressable assets (workload definitions and the
// like) through the viant/afs abstract file system, so that scenarios can
// live on disk, in an embed.FS or on any storage afs understands.
package meta

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service resolves asset URLs against an optional base URL and decodes the
// payload as YAML into the supplied target.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a meta service backed by the given afs service.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}

// Load downloads the asset at URL (resolved against the base URL unless
// absolute) and unmarshals it into target.
func (s *Service) Load(ctx context.Context, URL string, target interface{}) error {
	location := s.resolve(URL)
	data, err := s.fs.DownloadWithURL(ctx, location, s.options...)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", location, err)
	}
	if err = yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", location, err)
	}
	return nil
}

func (s *Service) resolve(URL string) string {
	if s.baseURL == "" || strings.Contains(URL, "://") {
		return URL
	}
	return url.Join(s.baseURL, URL)
}
