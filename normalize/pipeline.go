package normalize

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/41v4/img-manipulation/image"
	zlog "github.com/41v4/img-manipulation/log"
	"github.com/41v4/img-manipulation/utils"
)

// LockName is the run lock created inside the target directory
const LockName = ".imgnorm.lock"

func logger() zlog.Logger {
	return zlog.Get()
}

// Option ...
type Option func(*Pipeline)

// WithDryRun classifies without writing
func WithDryRun(on bool) Option {
	return func(p *Pipeline) {
		p.dryRun = on
	}
}

// WithoutLock skips the directory run lock
func WithoutLock() Option {
	return func(p *Pipeline) {
		p.noLock = true
	}
}

// Pipeline drives discover, decode, classify, transform and write for
// every candidate of a directory, one file at a time.
type Pipeline struct {
	policy Policy
	writer *Writer
	dryRun bool
	noLock bool
}

// New ...
func New(policy Policy, opts ...Option) (*Pipeline, error) {
	if policy.TargetHeight < 1 {
		return nil, fmt.Errorf("target height %d: %w", policy.TargetHeight, image.ErrInvalidDimension)
	}
	if !policy.Canonical.Compliant() {
		return nil, fmt.Errorf("canonical format %q: %w", policy.Canonical, image.ErrUnsupportedFormat)
	}
	p := &Pipeline{policy: policy, writer: NewWriter(policy)}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run processes every candidate in dir. Per-file failures are recorded in
// the report and never stop the run; a missing directory, a held lock or a
// cancelled ctx do. Cancellation is only observed between files.
func (p *Pipeline) Run(ctx context.Context, dir string) (*Report, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	if !p.dryRun && !p.noLock {
		lock, err := utils.Acquire(filepath.Join(dir, LockName))
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", dir, err)
		}
		defer lock.Unlock()
	}

	led := loadLedger(dir)
	r := newReport(dir)
	r.Total = len(files)
	logger().Infow("run start", "dir", dir, "files", r.Total,
		"height", p.policy.TargetHeight, "dryRun", p.dryRun)

	for i, fn := range files {
		if err = ctx.Err(); err != nil {
			r.Interrupted = true
			logger().Warnw("interrupted", "done", i, "total", r.Total)
			break
		}
		r.Add(p.process(fn, led))
	}
	r.Finished = time.Now()

	logger().Infow("run done", "dir", dir, "total", r.Total, "written", r.Written,
		"noop", r.NoOp, "planned", r.Planned, "skipped", r.Skipped, "elapsed", r.Elapsed())
	for _, o := range r.Skips() {
		logger().Warnw("skipped", "path", o.Path, "kind", Kind(o.Err), "err", o.Err)
	}
	return r, err
}

// process runs one file through Discovered -> Decoded -> Classified ->
// Transformed -> Written, or stops at Skipped.
func (p *Pipeline) process(fn string, led *ledger) Outcome {
	o := Outcome{Path: fn}

	f, err := image.Open(fn)
	if err != nil {
		return o.skip(err)
	}
	o.Before = f.Attr

	d := Classify(f.Attr, p.policy)
	o.Decision = d
	if d.IsNoOp() {
		o.Status = StatusNoOp
		logger().Debugw("compliant", "path", fn, "attr", f.Attr)
		return o
	}
	o.Output = OutputPath(fn, d, p.policy)
	sibling := d.Convert && p.policy.KeepOriginal && o.Output != fn
	if sibling && led.derived(o.Output, f) {
		o.Status, o.Note = StatusNoOp, "up to date"
		logger().Debugw("converted sibling up to date", "path", fn, "output", o.Output)
		return o
	}
	if p.dryRun {
		return p.plan(o, f, d)
	}

	m, format, err := Transform(f, d, p.policy)
	if err != nil {
		return o.skip(err)
	}
	b := m.Bounds()
	o.After = image.Attr{Width: b.Dx(), Height: b.Dy(), Format: format}

	wasIntact := sibling && led.intact(o.Output)
	w, err := p.writer.Write(fn, m, format, d)
	if err != nil {
		return o.skip(err)
	}
	if sibling {
		led.record(w.Path, f, w.Hash, wasIntact)
	} else {
		led.rehash(w.Path, w.Hash)
	}
	if err = led.save(); err != nil {
		logger().Warnw("save ledger fail", "path", led.path, "err", err)
	}
	o.Status = StatusWritten
	o.Bytes, o.Hash = w.Bytes, w.Hash
	o.After.Size = w.Bytes
	if w.Removed {
		o.Note = "original removed"
	}
	logger().Infow("written", "path", fn, "decision", d.String(),
		"before", f.Attr.String(), "after", o.After.String(), "output", w.Path)
	return o
}

// plan fills the expected result without touching pixels
func (p *Pipeline) plan(o Outcome, f *image.File, d Decision) Outcome {
	o.After = f.Attr
	o.After.Size = 0
	if d.Resize {
		w, h, err := image.FitHeight(f.Width, f.Height, p.policy.TargetHeight)
		if err != nil {
			return o.skip(&image.InvalidImageError{Path: f.Path, Width: f.Width, Height: f.Height})
		}
		o.After.Width, o.After.Height = w, h
	}
	if d.Convert {
		o.After.Format = p.policy.Canonical
	}
	o.Status = StatusPlanned
	return o
}

func (o Outcome) skip(err error) Outcome {
	o.Status = StatusSkipped
	o.Err = err
	logger().Warnw("skip", "path", o.Path, "kind", Kind(err), "err", err)
	return o
}
