package normalize

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/multierr"

	"github.com/41v4/img-manipulation/image"
)

// Status is the terminal state of one file
type Status string

// statuses
const (
	StatusWritten Status = "written"
	StatusNoOp    Status = "noop"
	StatusPlanned Status = "planned" // dry run, would be written
	StatusSkipped Status = "skipped"
)

// Outcome of processing one candidate
type Outcome struct {
	Path     string     `json:"path"`
	Output   string     `json:"output,omitempty"`
	Decision Decision   `json:"decision"`
	Before   image.Attr `json:"before"`
	After    image.Attr `json:"after"`
	Bytes    int64      `json:"bytes,omitempty"`
	Hash     string     `json:"hash,omitempty"`
	Status   Status     `json:"status"`
	Note     string     `json:"note,omitempty"`
	Err      error      `json:"-"`
}

// Kind names the error taxonomy of err: decode, invalid or write.
func Kind(err error) string {
	var (
		de *image.DecodeError
		ie *image.InvalidImageError
		we *image.WriteError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &de):
		return "decode"
	case errors.As(err, &ie):
		return "invalid"
	case errors.As(err, &we):
		return "write"
	}
	return "other"
}

// Report collects the outcomes of a run
type Report struct {
	Dir         string
	Outcomes    []Outcome
	Total       int
	Written     int
	NoOp        int
	Planned     int
	Skipped     int
	Interrupted bool
	Started     time.Time
	Finished    time.Time
}

func newReport(dir string) *Report {
	return &Report{Dir: dir, Started: time.Now()}
}

// Add records an outcome and bumps its counter
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusWritten:
		r.Written++
	case StatusNoOp:
		r.NoOp++
	case StatusPlanned:
		r.Planned++
	case StatusSkipped:
		r.Skipped++
	}
}

// Skips returns the outcomes that failed
func (r *Report) Skips() []Outcome {
	var a []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusSkipped {
			a = append(a, o)
		}
	}
	return a
}

// Err combines every per-file error, nil when nothing was skipped.
func (r *Report) Err() error {
	var err error
	for _, o := range r.Skips() {
		err = multierr.Append(err, o.Err)
	}
	return err
}

// Elapsed ...
func (r *Report) Elapsed() time.Duration {
	if r.Finished.IsZero() {
		return time.Since(r.Started)
	}
	return r.Finished.Sub(r.Started)
}

// Print writes a human readable table of the run
func (r *Report) Print(w io.Writer) {
	for _, o := range r.Outcomes {
		name := filepath.Base(o.Path)
		switch o.Status {
		case StatusSkipped:
			fmt.Fprintf(w, " %-8s %-28s %-7s %s\n", o.Status, name, Kind(o.Err), o.Err)
		case StatusNoOp:
			fmt.Fprintf(w, " %-8s %-28s %s %s\n", o.Status, name, o.Before, o.Note)
		default:
			fmt.Fprintf(w, " %-8s %-28s %-16s %s -> %s %s\n", o.Status, name, o.Decision,
				o.Before, o.After, filepath.Base(o.Output))
		}
	}
	fmt.Fprintf(w, "total: %d, written: %d, noop: %d, planned: %d, skipped: %d, elapsed: %s\n",
		r.Total, r.Written, r.NoOp, r.Planned, r.Skipped, r.Elapsed().Round(time.Millisecond))
	if r.Interrupted {
		fmt.Fprintln(w, "interrupted before all files were visited")
	}
}
