// Package scenario loads saved usage scenarios from YAML files.
// A scenario is a complete set of usage assumptions the CLI can replay
// instead of taking every value as a flag.
package scenario

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Epherum/translation-app/core/types"
	"github.com/Epherum/translation-app/internal/errors"
)

// Load reads a scenario file and returns validated assumptions.
// Fields missing from the file keep their baseline defaults.
func Load(path string) (types.UsageAssumptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.UsageAssumptions{}, errors.Config("failed to read scenario file", err).
			WithContext("path", path)
	}
	return Parse(data)
}

// Parse decodes scenario YAML on top of the default assumptions
func Parse(data []byte) (types.UsageAssumptions, error) {
	assumptions := types.DefaultAssumptions()
	if err := yaml.Unmarshal(data, &assumptions); err != nil {
		return types.UsageAssumptions{}, errors.Parsing("failed to parse scenario file", err)
	}
	if err := assumptions.Validate(); err != nil {
		return types.UsageAssumptions{}, err
	}
	return assumptions, nil
}
