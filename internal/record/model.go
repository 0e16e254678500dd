package record

import "sort"

// State is the lifecycle state of a workspace build.
type State string

const (
	StateProvisional State = "provisional"
	StateComplete    State = "complete"
	StateFailed      State = "failed"
	StateRolledBack  State = "rolled_back"
)

// File represents .crust-trust.yaml.
type File struct {
	Version     int               `yaml:"version"`
	Name        string            `yaml:"name"`
	State       State             `yaml:"state"`
	GeneratedAt string            `yaml:"generated_at"`
	ToolVersion string            `yaml:"tool_version"`
	Crates      map[string]*Crate `yaml:"crates"`
	Steps       []Step            `yaml:"steps,omitempty"`
}

// Crate records the outcome of scaffolding one crate.
type Crate struct {
	Dependencies []string `yaml:"dependencies,omitempty"`
	Created      bool     `yaml:"created"`
	Registered   bool     `yaml:"registered"`
	Error        string   `yaml:"error,omitempty"`
}

// Step records the outcome of one toolchain step.
type Step struct {
	Name  string `yaml:"name"`
	OK    bool   `yaml:"ok"`
	Error string `yaml:"error,omitempty"`
}

// New returns an empty provisional record.
func New(name, generatedAt, toolVersion string) *File {
	return &File{
		Version:     1,
		Name:        name,
		State:       StateProvisional,
		GeneratedAt: generatedAt,
		ToolVersion: toolVersion,
		Crates:      make(map[string]*Crate),
	}
}

// AddStep appends a step outcome. A nil err marks the step as passed.
func (f *File) AddStep(name string, err error) {
	s := Step{Name: name, OK: err == nil}
	if err != nil {
		s.Error = err.Error()
	}
	f.Steps = append(f.Steps, s)
}

// Failed returns the names of crates that recorded an error.
func (f *File) Failed() []string {
	var out []string
	for name, c := range f.Crates {
		if c.Error != "" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
