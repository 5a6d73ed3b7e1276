// Package workload loads and validates simulation scenario definitions.
package workload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/simsched/model"
	"github.com/viant/simsched/service/meta"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

// Service is the workload DAO: it resolves YAML definitions into validated
// model.Workload records.
type Service struct {
	metaService *meta.Service
}

// New creates a workload service.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.metaService == nil {
		ret.metaService = meta.New(afs.New(), "")
	}
	return ret
}

// Load loads a workload from YAML at the specified URL. A missing extension
// defaults to .yaml.
func (s *Service) Load(ctx context.Context, URL string) (*model.Workload, error) {
	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	var doc document
	if err := s.metaService.Load(ctx, URL, &doc); err != nil {
		return nil, fmt.Errorf("failed to load workload from %s: %w", URL, err)
	}
	workload, err := doc.normalize()
	if err != nil {
		return nil, fmt.Errorf("failed to parse workload from %s: %w", URL, err)
	}
	if workload.Name == "" {
		workload.Name = nameFromURL(URL)
	}
	return workload, nil
}

// DecodeYAML decodes a workload definition held in memory.
func (s *Service) DecodeYAML(encoded []byte) (*model.Workload, error) {
	var doc document
	if err := yaml.Unmarshal(encoded, &doc); err != nil {
		return nil, err
	}
	return doc.normalize()
}

// document is the lenient YAML shape: expectation entries may be written as
// bare numbers or strings and are coerced afterwards.
type document struct {
	Name        string               `yaml:"name"`
	MaxPriority int                  `yaml:"maxPriority"`
	Resources   int                  `yaml:"resources"`
	Processes   []*model.ProcessSpec `yaml:"processes"`
	Expect      []interface{}        `yaml:"expect"`
}

func (d *document) normalize() (*model.Workload, error) {
	workload := &model.Workload{
		Name:        d.Name,
		MaxPriority: d.MaxPriority,
		Resources:   d.Resources,
		Processes:   d.Processes,
	}
	for _, entry := range d.Expect {
		workload.Expect = append(workload.Expect, toolbox.AsString(entry))
	}
	workload.Init()
	if issues := workload.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	return workload, nil
}

func nameFromURL(URL string) string {
	base := filepath.Base(URL)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
