package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter counts media files as a scan finds them. The total is not known
// up front.
type Reporter interface {
	Increment(name string)
	Finish()
	Count() int
}

// NewReporter returns a CIReporter when running under CI and a
// TerminalReporter otherwise.
func NewReporter(w io.Writer, description string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w, every: 50}
	}
	return NewTerminalReporter(w, description)
}

// TerminalReporter shows a spinner with a running count.
type TerminalReporter struct {
	mu    sync.Mutex
	bar   *progressbar.ProgressBar
	count int
}

// NewTerminalReporter draws to w.
func NewTerminalReporter(w io.Writer, description string) *TerminalReporter {
	return &TerminalReporter{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (r *TerminalReporter) Increment(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	_ = r.bar.Add(1)
}

func (r *TerminalReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.bar.Finish()
}

func (r *TerminalReporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// CIReporter prints a line every few files, suitable for CI logs.
type CIReporter struct {
	mu    sync.Mutex
	w     io.Writer
	every int
	count int
}

func (r *CIReporter) Increment(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	if r.count == 1 || r.every <= 1 || r.count%r.every == 0 {
		fmt.Fprintf(r.w, "[%d] %s\n", r.count, name)
	}
}

func (r *CIReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "Scan complete: %d media files\n", r.count)
}

func (r *CIReporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
