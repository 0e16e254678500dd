package scaffold

import (
	"fmt"
	"io"
	"strings"

	"github.com/CyberForgeX/crust-trust/internal/crate"
	"github.com/CyberForgeX/crust-trust/internal/ui"
	"github.com/CyberForgeX/crust-trust/internal/workspace"
	"golang.org/x/sync/errgroup"
)

// Options configures Run.
type Options struct {
	// Jobs bounds the number of crates built at once. Zero or less starts
	// one goroutine per crate with no bound.
	Jobs int

	// Progress receives per-crate lines. A nil Progress discards them.
	Progress *ui.Progress

	// Announce is called by every unit after its crate is registered, with
	// the full set of names in the registry. Defaults to a progress line.
	Announce func(name string, names []string)
}

// Result is the outcome of one crate.
type Result struct {
	Spec       crate.Spec
	Created    bool
	Registered bool
	Err        error
}

// Report holds one Result per registry entry, sorted by crate name.
type Report struct {
	Results []Result
}

// Failed returns the results that carry an error.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Created returns the names of crates whose directory was written.
func (r Report) Created() []string {
	var out []string
	for _, res := range r.Results {
		if res.Created {
			out = append(out, res.Spec.Name)
		}
	}
	return out
}

// Run creates and registers every crate in reg under ws. Per-crate failures
// are returned in the Report. The returned error is non-nil only if a unit
// panicked; the panic is recovered so the remaining units still finish.
func Run(ws *workspace.Context, reg crate.Registry, opts Options) (Report, error) {
	progress := opts.Progress
	if progress == nil {
		progress = ui.NewProgress(io.Discard, reg.Len())
	}
	announce := opts.Announce
	if announce == nil {
		announce = func(name string, names []string) {
			progress.Log("Crate '%s' is communicating with other crates: [%s]", name, strings.Join(names, ", "))
		}
	}

	specs := reg.Specs()
	results := make([]Result, len(specs))

	var g errgroup.Group
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, spec := range specs {
		i, spec := i, spec
		results[i].Spec = spec
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("crate %s: panic: %v", spec.Name, r)
					results[i].Err = err
					progress.Fail(spec.Name, err)
				}
			}()
			buildCrate(ws, reg, &results[i], progress, announce)
			return nil
		})
	}
	err := g.Wait()
	return Report{Results: results}, err
}

// buildCrate runs create, register and announce for one crate. Each unit
// writes only to its own Result.
func buildCrate(ws *workspace.Context, reg crate.Registry, res *Result, progress *ui.Progress, announce func(string, []string)) {
	name := res.Spec.Name

	if err := ws.CreateCrate(res.Spec); err != nil {
		res.Err = fmt.Errorf("creating crate: %w", err)
		progress.Fail(fmt.Sprintf("Error creating crate '%s'", name), err)
		return
	}
	res.Created = true

	if err := ws.Members.Register(name); err != nil {
		res.Err = fmt.Errorf("registering crate: %w", err)
		progress.Fail(fmt.Sprintf("Error registering crate '%s'", name), err)
		return
	}
	res.Registered = true

	announce(name, reg.Names())
	progress.Done(fmt.Sprintf("%s created", name))
}
