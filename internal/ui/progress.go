package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress tracks completion of parallel tasks with a simple counter display.
// It is safe for concurrent use; lines from different goroutines never interleave.
type Progress struct {
	out       io.Writer
	total     int
	completed atomic.Int32
	failed    atomic.Int32
	mu        sync.Mutex
}

// NewProgress creates a progress tracker for n tasks.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one task as completed and prints the current progress.
func (p *Progress) Done(label string) {
	n := int(p.completed.Add(1))
	p.println(fmt.Sprintf("[%d/%d] %s", n, p.total, label))
}

// Fail marks one task as completed with an error.
func (p *Progress) Fail(label string, err error) {
	n := int(p.completed.Add(1))
	p.failed.Add(1)
	p.println(fmt.Sprintf("[%d/%d] %s", n, p.total, FailStyle.Render(fmt.Sprintf("%s: %v", label, err))))
}

// Failed returns how many tasks were marked with Fail.
func (p *Progress) Failed() int {
	return int(p.failed.Load())
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	p.println(fmt.Sprintf(format, args...))
}

func (p *Progress) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.out, line)
}
