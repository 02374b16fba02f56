package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	phaseColor = color.New(color.FgCyan)
	foundColor = color.New(color.FgGreen)
	errorColor = color.New(color.FgRed)
	runColor   = color.New(color.Bold)
)

// Tracker narrates a run to the operator. With the bar enabled it also keeps
// a single redrawn progress line for the current phase.
type Tracker struct {
	mu        sync.Mutex
	writer    io.Writer
	phase     string
	current   int
	total     int
	startTime time.Time
	enabled   bool
	lastLine  string
}

// New creates a tracker writing to stdout
func New(enabled bool) *Tracker {
	return NewWithWriter(os.Stdout, enabled)
}

func NewWithWriter(w io.Writer, enabled bool) *Tracker {
	return &Tracker{
		writer:    w,
		startTime: time.Now(),
		enabled:   enabled,
	}
}

// Phase announces a new stage of the run.
func (p *Tracker) Phase(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLine()
	phaseColor.Fprintf(p.writer, "[*] "+format+"\n", args...)
	p.print()
}

// StartPhase starts a progress bar for a phase with total units of work;
// pass 0 when unknown. It is a no-op unless the bar is enabled.
func (p *Tracker) StartPhase(phase string, total int) {
	if !p.enabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.phase = phase
	p.current = 0
	p.total = total
	p.clearLine()
	p.print()
}

// Increment increments the current progress by 1
func (p *Tracker) Increment() {
	if !p.enabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.current++
	p.clearLine()
	p.print()
}

// Complete marks the current phase as complete
func (p *Tracker) Complete() {
	if !p.enabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.phase == "" {
		return
	}
	p.current = p.total
	p.clearLine()
	p.print()
	fmt.Fprintln(p.writer)
	p.lastLine = ""
	p.phase = ""
}

// Found reports a confirmed subdomain.
func (p *Tracker) Found(host string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLine()
	foundColor.Fprintf(p.writer, "[FOUND] %s\n", host)
	p.print()
}

// Error reports an absorbed failure. It never stops the run.
func (p *Tracker) Error(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLine()
	errorColor.Fprintf(p.writer, "[ERROR] "+format+"\n", args...)
	p.print()
}

// Headline prints a run-level message.
func (p *Tracker) Headline(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLine()
	runColor.Fprintf(p.writer, "[+] "+format+"\n", args...)
	p.print()
}

// Info prints an informational message without affecting progress
func (p *Tracker) Info(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLine()
	fmt.Fprintf(p.writer, format+"\n", args...)
	p.print()
}

func (p *Tracker) clearLine() {
	if p.lastLine != "" {
		fmt.Fprintf(p.writer, "\r%s\r", strings.Repeat(" ", len(p.lastLine)))
		p.lastLine = ""
	}
}

func (p *Tracker) print() {
	if !p.enabled || p.phase == "" {
		return
	}

	elapsed := time.Since(p.startTime)

	percent := float64(0)
	if p.total > 0 {
		percent = float64(p.current) / float64(p.total) * 100
	}

	barWidth := 20
	filled := int(percent / 100 * float64(barWidth))
	bar := strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled)

	if p.total > 0 {
		p.lastLine = fmt.Sprintf("%-30s [%s] %3.0f%% (%d/%d) [%s]",
			p.phase, bar, percent, p.current, p.total, formatDuration(elapsed))
	} else {
		p.lastLine = fmt.Sprintf("%-30s [%s] %d items [%s]",
			p.phase, strings.Repeat("=", p.current%barWidth)+">", p.current, formatDuration(elapsed))
	}

	fmt.Fprint(p.writer, "\r"+p.lastLine)
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
