// Package flags provides feature flag adapters.
package flags

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/evmscan/explorer-gateway/internal/ports"
)

// Static evaluates feature flags from a fixed key-value table, typically
// the flags section of the configuration file. Values are strings; each
// accessor parses into its own type and falls back to the caller's
// default when the flag is missing or malformed.
type Static struct {
	values map[string]string
}

var _ ports.FeatureFlags = (*Static)(nil)

// NewStatic creates a static flag provider. A nil map means every lookup
// resolves to its default.
func NewStatic(values map[string]string) *Static {
	return &Static{values: values}
}

// IsEnabled checks a boolean flag.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	raw, ok := s.values[flag]
	if !ok {
		return defaultValue
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}

	return value
}

// GetString retrieves a string flag.
func (s *Static) GetString(_ context.Context, flag string, defaultValue string) string {
	raw, ok := s.values[flag]
	if !ok {
		return defaultValue
	}

	return raw
}

// GetInt retrieves an integer flag.
func (s *Static) GetInt(_ context.Context, flag string, defaultValue int) int {
	raw, ok := s.values[flag]
	if !ok {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}

	return value
}

// GetFloat retrieves a float flag.
func (s *Static) GetFloat(_ context.Context, flag string, defaultValue float64) float64 {
	raw, ok := s.values[flag]
	if !ok {
		return defaultValue
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

// GetJSON retrieves a JSON flag value and unmarshals it into target.
func (s *Static) GetJSON(_ context.Context, flag string, target any) error {
	raw, ok := s.values[flag]
	if !ok {
		return fmt.Errorf("flag %q not found", flag)
	}

	err := json.Unmarshal([]byte(raw), target)
	if err != nil {
		return fmt.Errorf("unmarshalling flag %q: %w", flag, err)
	}

	return nil
}
