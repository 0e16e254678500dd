package crate

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		token string
		want  Spec
		ok    bool
	}{
		{"core:serde,log", Spec{Name: "core", Dependencies: []string{"serde", "log"}}, true},
		{"util:", Spec{Name: "util"}, true},
		{"a: x , ,y", Spec{Name: "a", Dependencies: []string{"x", "y"}}, true},
		{"web:tokio:full", Spec{Name: "web", Dependencies: []string{"tokio:full"}}, true},
		{"nocolon", Spec{}, false},
		{":serde", Spec{}, false},
		{"", Spec{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseSpec(tt.token)
			if ok != tt.ok {
				t.Fatalf("ParseSpec(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestBuild_empty(t *testing.T) {
	reg, skipped := Build(nil)
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	s, ok := reg.Get(DefaultName)
	if !ok {
		t.Fatalf("expected %s entry", DefaultName)
	}
	if len(s.Dependencies) != 0 {
		t.Errorf("default crate should have no dependencies, got %v", s.Dependencies)
	}
}

func TestBuild_malformedOnly(t *testing.T) {
	reg, skipped := Build([]string{"bogus"})
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (default only applies to empty input)", reg.Len())
	}
	if !reflect.DeepEqual(skipped, []string{"bogus"}) {
		t.Errorf("skipped = %v", skipped)
	}
}

func TestBuild_mixedValidAndMalformed(t *testing.T) {
	reg, skipped := Build([]string{"core:serde", "broken"})
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	if _, ok := reg.Get("core"); !ok {
		t.Error("expected core to be registered")
	}
	if len(skipped) != 1 || skipped[0] != "broken" {
		t.Errorf("skipped = %v, want [broken]", skipped)
	}
}

func TestBuild_lastWriteWins(t *testing.T) {
	reg, _ := Build([]string{"core:serde", "core:log"})
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	s, _ := reg.Get("core")
	if !reflect.DeepEqual(s.Dependencies, []string{"log"}) {
		t.Errorf("Dependencies = %v, want [log]", s.Dependencies)
	}
}

func TestRegistry_namesSorted(t *testing.T) {
	reg, _ := Build([]string{"zeta:", "alpha:", "mid:"})
	want := []string{"alpha", "mid", "zeta"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	specs := reg.Specs()
	for i, s := range specs {
		if s.Name != want[i] {
			t.Errorf("Specs()[%d].Name = %q, want %q", i, s.Name, want[i])
		}
	}
}

func TestBuild_property(t *testing.T) {
	ident := rapid.StringMatching(`[a-z][a-z0-9_]{0,8}`)
	rapid.Check(t, func(t *rapid.T) {
		name := ident.Draw(t, "name")
		deps := rapid.SliceOfDistinct(ident, func(s string) string { return s }).Draw(t, "deps")

		reg, skipped := Build([]string{name + ":" + strings.Join(deps, ",")})
		if len(skipped) != 0 {
			t.Fatalf("unexpected skipped tokens: %v", skipped)
		}
		s, ok := reg.Get(name)
		if !ok {
			t.Fatalf("crate %q not registered", name)
		}
		if len(s.Dependencies) != len(deps) {
			t.Fatalf("got %d deps, want %d", len(s.Dependencies), len(deps))
		}
		for i := range deps {
			if s.Dependencies[i] != deps[i] {
				t.Fatalf("dep[%d] = %q, want %q", i, s.Dependencies[i], deps[i])
			}
		}
	})
}
