package sitequery

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// RegistryLoader reads a site registry from YAML.
type RegistryLoader struct {
	reader io.Reader
}

func NewRegistryLoader(reader io.Reader) *RegistryLoader {
	return &RegistryLoader{reader: reader}
}

func (l *RegistryLoader) Load() (*Registry, error) {
	decoder := yaml.NewDecoder(l.reader)
	var reg Registry
	if err := decoder.Decode(&reg); err != nil {
		return nil, err
	}
	if reg.Default == "" {
		return nil, fmt.Errorf("site registry is missing a default site")
	}
	if len(reg.Sites) == 0 {
		return nil, fmt.Errorf("site registry lists no sites")
	}
	return &reg, nil
}

// LoadRegistry reads the registry from the given path, falling back to the
// built-in destinations when no path is configured.
func LoadRegistry(path string) (Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Registry{}, fmt.Errorf("failed to open site registry: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("Failed to close site registry file", "path", path, "error", err)
		}
	}()

	reg, err := NewRegistryLoader(file).Load()
	if err != nil {
		return Registry{}, fmt.Errorf("failed to load site registry: %w", err)
	}
	return *reg, nil
}
