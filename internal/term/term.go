// Package term displays widget output on a terminal.
package term

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/fatih/color"

	"github.com/voidshard/playground/pkg/structs"
)

var (
	colorFinal   = color.New(color.FgGreen, color.Bold)
	colorFailed  = color.New(color.FgRed, color.Bold)
	colorRunning = color.New(color.FgYellow)
	colorOutput  = color.New(color.FgCyan)
)

// Display writes status & outputs to a terminal. Repeats of what's already
// shown are suppressed, so a poller can write to it every tick.
type Display struct {
	lock sync.Mutex
	out  io.Writer

	status  string
	outputs []string
	shown   bool
}

// NewDisplay returns a display writing to out.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

// Status returns a sink for the run status.
func (d *Display) Status() *StatusLine {
	return &StatusLine{d: d}
}

// Outputs returns a sink for run outputs.
func (d *Display) Outputs() *OutputList {
	return &OutputList{d: d}
}

// Message returns a sink printing every line it's given.
func (d *Display) Message() *MessageLine {
	return &MessageLine{d: d}
}

// StatusLine prints a run status, coloured by state.
type StatusLine struct {
	d *Display
}

func (s *StatusLine) SetText(in string) {
	s.d.lock.Lock()
	defer s.d.lock.Unlock()
	if in == s.d.status {
		return
	}
	s.d.status = in
	fmt.Fprintf(s.d.out, "status: %s\n", statusColor(structs.ToStatus(in)).Sprint(in))
}

// OutputList prints run outputs, one per line.
type OutputList struct {
	d *Display
}

func (o *OutputList) SetList(items []string) {
	o.d.lock.Lock()
	defer o.d.lock.Unlock()
	if o.d.shown && slices.Equal(items, o.d.outputs) {
		return
	}
	o.d.shown = true
	o.d.outputs = append([]string{}, items...)
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(o.d.out, "outputs:")
	for _, item := range items {
		fmt.Fprintf(o.d.out, "  - %s\n", colorOutput.Sprint(item))
	}
}

// MessageLine prints each text it's given on its own line.
type MessageLine struct {
	d *Display
}

func (m *MessageLine) SetText(in string) {
	m.d.lock.Lock()
	defer m.d.lock.Unlock()
	fmt.Fprintln(m.d.out, in)
}

func statusColor(s structs.Status) *color.Color {
	switch {
	case structs.IsFailedStatus(s):
		return colorFailed
	case structs.IsFinalStatus(s):
		return colorFinal
	default:
		return colorRunning
	}
}
