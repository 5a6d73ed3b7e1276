package simsched

import (
	"fmt"

	"github.com/viant/simsched/service/dispatch"
)

// Config is a serialisable representation of the engine configuration. It
// can be populated from JSON or YAML; the zero value is useful - nested
// fields inherit their package defaults.
type Config struct {
	Dispatch dispatch.Config `json:"dispatch" yaml:"dispatch"`

	// DefaultPolicy is used by Runtime.Run when no policy name is given.
	DefaultPolicy string `json:"defaultPolicy" yaml:"defaultPolicy"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Dispatch:      dispatch.DefaultConfig(),
		DefaultPolicy: "fcfs",
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Dispatch.MaxTicks <= 0 {
		return fmt.Errorf("dispatch.maxTicks must be > 0")
	}
	if c.DefaultPolicy == "" {
		return fmt.Errorf("defaultPolicy must not be empty")
	}
	return nil
}
