package crate

import (
	"sort"
	"strings"
)

// DefaultName is the crate created when no crate specs are given.
const DefaultName = "default_project"

// Spec is one requested crate and its declared dependencies.
type Spec struct {
	Name         string
	Dependencies []string
}

// ParseSpec parses a "name:dep1,dep2" token.
// ok is false when the token has no ':' or an empty name.
func ParseSpec(token string) (Spec, bool) {
	name, deps, found := strings.Cut(token, ":")
	if !found {
		return Spec{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Spec{}, false
	}
	return Spec{Name: name, Dependencies: splitDeps(deps)}, true
}

// splitDeps splits a comma-separated dependency list, dropping empty entries
// so that "name:" yields no dependencies.
func splitDeps(s string) []string {
	var deps []string
	for _, d := range strings.Split(s, ",") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		deps = append(deps, d)
	}
	return deps
}

// Registry maps crate names to their specs. The zero value is empty.
// A Registry is never mutated after Build returns, so it is safe to read
// from any number of goroutines without locking.
type Registry struct {
	specs map[string]Spec
}

// Build parses tokens into a Registry. Malformed tokens are skipped and
// returned so callers can warn about them. A later token with the same name
// replaces an earlier one. With no tokens at all, the registry holds a single
// DefaultName entry with no dependencies.
func Build(tokens []string) (Registry, []string) {
	specs := make(map[string]Spec, len(tokens))
	if len(tokens) == 0 {
		specs[DefaultName] = Spec{Name: DefaultName}
		return Registry{specs: specs}, nil
	}

	var skipped []string
	for _, tok := range tokens {
		s, ok := ParseSpec(tok)
		if !ok {
			skipped = append(skipped, tok)
			continue
		}
		specs[s.Name] = s
	}
	return Registry{specs: specs}, skipped
}

// Get returns the crate Spec registered under name.
func (r Registry) Get(name string) (Spec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// Len returns the number of registered crates.
func (r Registry) Len() int { return len(r.specs) }

// Names returns the registered crate names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for n := range r.specs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Specs returns all specs sorted by name.
func (r Registry) Specs() []Spec {
	out := make([]Spec, 0, len(r.specs))
	for _, n := range r.Names() {
		out = append(out, r.specs[n])
	}
	return out
}
