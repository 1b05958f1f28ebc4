//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/chapter3/internal/format"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 20
)

// Spinner abstracts the terminal spinner so progress display can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix takes the spinner's lock because its render goroutine reads
// the suffix concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// ProgressIndicator shows a spinner with a percentage and a bar while a
// long evaluation runs.
type ProgressIndicator struct {
	spinner Spinner
	label   string
	last    string
}

// NewProgressIndicator creates an indicator drawing on out.
func NewProgressIndicator(out io.Writer, label string) *ProgressIndicator {
	return newProgressIndicator(newSpinner(out), label)
}

func newProgressIndicator(s Spinner, label string) *ProgressIndicator {
	return &ProgressIndicator{spinner: s, label: label}
}

// Start shows the spinner at 0%.
func (p *ProgressIndicator) Start() {
	p.Update(0)
	p.spinner.Start()
}

// Update refreshes the suffix. Repeated values are not forwarded.
func (p *ProgressIndicator) Update(progress float64) {
	suffix := " " + p.label + " " + format.FormatPercent(progress) + " " + progressBar(progress, ProgressBarWidth)
	if suffix == p.last {
		return
	}
	p.last = suffix
	p.spinner.UpdateSuffix(suffix)
}

// Stop removes the spinner.
func (p *ProgressIndicator) Stop() {
	p.spinner.Stop()
}

// progressBar generates a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	return strings.Repeat("█", count) + strings.Repeat("░", length-count)
}
