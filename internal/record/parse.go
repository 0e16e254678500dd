package record

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a .crust-trust.yaml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace record path
	if err != nil {
		return nil, fmt.Errorf("reading build record: %w", err)
	}
	return Parse(data)
}

// LoadOrNew loads the record at path, or returns New(...) if it does not
// exist. A loaded record keeps its crates; state, timestamp, tool version and
// steps are reset for the new run.
func LoadOrNew(path, name, generatedAt, toolVersion string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(name, generatedAt, toolVersion), nil
	}
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	f.Version = 1
	f.Name = name
	f.State = StateProvisional
	f.GeneratedAt = generatedAt
	f.ToolVersion = toolVersion
	f.Steps = nil
	if f.Crates == nil {
		f.Crates = make(map[string]*Crate)
	}
	return f, nil
}

// Parse parses .crust-trust.yaml content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing build record YAML: %w", err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported build record version: %d (expected 1)", f.Version)
	}
	return &f, nil
}

// Save writes the record to disk.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling build record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // record needs to be readable
		return fmt.Errorf("writing build record: %w", err)
	}
	return nil
}
