package service

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressReporterImpl implements the ProgressReporter interface on top of
// a terminal progress bar. In non-interactive environments (pipes, CI) the
// bar is suppressed entirely so output stays machine-readable.
type ProgressReporterImpl struct {
	mu          sync.Mutex
	writer      io.Writer
	progressBar *progressbar.ProgressBar
	interactive bool
	enabled     bool
}

// NewProgressReporter creates a new progress reporter writing to stderr
func NewProgressReporter() *ProgressReporterImpl {
	return &ProgressReporterImpl{
		writer:      os.Stderr,
		interactive: isInteractiveWriter(os.Stderr),
		enabled:     true,
	}
}

// StartProgress begins tracking progress for the given total
func (p *ProgressReporterImpl) StartProgress(total int, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.interactive || total <= 1 {
		return
	}

	p.progressBar = p.createProgressBar(description, total)
}

// UpdateProgress advances the progress indicator
func (p *ProgressReporterImpl) UpdateProgress(current int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.progressBar != nil {
		_ = p.progressBar.Set(current)
	}
}

// FinishProgress completes the progress display
func (p *ProgressReporterImpl) FinishProgress() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.progressBar != nil {
		_ = p.progressBar.Finish()
		p.progressBar = nil
	}
}

// SetEnabled turns progress reporting on or off
func (p *ProgressReporterImpl) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = enabled
}

// SetWriter sets the output writer, re-checking interactivity
func (p *ProgressReporterImpl) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.writer = writer
	p.interactive = isInteractiveWriter(writer)
}

// createProgressBar creates a new progress bar with consistent styling
func (p *ProgressReporterImpl) createProgressBar(description string, max int) *progressbar.ProgressBar {
	writer := p.writer
	if writer == nil {
		writer = io.Discard
	}

	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetWriter(writer),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(writer)
		}),
	)
}

// isInteractiveWriter reports whether the writer is a terminal
func isInteractiveWriter(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
