package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileConfigLoader reads a JSON config file from local disk. It is the
// default loader when CONFIG_SOURCE is unset.
type FileConfigLoader struct{}

// Load implements ConfigLoader. Types with a custom UnmarshalJSON (such as
// ConsumerConfig and Duration) apply their own defaults during decoding.
func (*FileConfigLoader) Load(_ context.Context, path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	return nil
}
