package normalize

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/41v4/img-manipulation/image"
)

// LedgerName records which converted outputs this tool produced
const LedgerName = ".imgnorm.ledger"

// ledgerEntry is one converted output: the murmur3 of its content and the
// modification time (unix nano) of every source it was derived from.
type ledgerEntry struct {
	Hash    string           `yaml:"hash"`
	Sources map[string]int64 `yaml:"sources"`
}

// ledger is keyed by output base name, so a moved directory keeps its state.
type ledger struct {
	path    string
	entries map[string]*ledgerEntry
	dirty   bool
}

func loadLedger(dir string) *ledger {
	l := &ledger{path: filepath.Join(dir, LedgerName), entries: map[string]*ledgerEntry{}}
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger().Warnw("read ledger fail", "path", l.path, "err", err)
		}
		return l
	}
	if err = yaml.Unmarshal(data, &l.entries); err != nil {
		logger().Warnw("bad ledger, starting over", "path", l.path, "err", err)
		l.entries = map[string]*ledgerEntry{}
	}
	return l
}

func hashFile(fn string) string {
	data, err := os.ReadFile(fn)
	if err != nil {
		return ""
	}
	return image.HashContent(data)
}

// intact reports whether dst still holds what this tool last wrote there.
func (l *ledger) intact(dst string) bool {
	e, ok := l.entries[filepath.Base(dst)]
	return ok && e.Hash != "" && hashFile(dst) == e.Hash
}

// derived reports whether dst is an unchanged output of src as it is now.
func (l *ledger) derived(dst string, f *image.File) bool {
	e, ok := l.entries[filepath.Base(dst)]
	if !ok {
		return false
	}
	mt, ok := e.Sources[filepath.Base(f.Path)]
	return ok && mt == f.Modified.UnixNano() && l.intact(dst)
}

// record notes that dst was written from f. Sources that produced the
// previous content are kept only when that content was intact.
func (l *ledger) record(dst string, f *image.File, hash string, wasIntact bool) {
	e, ok := l.entries[filepath.Base(dst)]
	if !ok || !wasIntact {
		e = &ledgerEntry{Sources: map[string]int64{}}
		l.entries[filepath.Base(dst)] = e
	}
	e.Hash = hash
	e.Sources[filepath.Base(f.Path)] = f.Modified.UnixNano()
	l.dirty = true
}

// rehash follows an in-place rewrite of a known output
func (l *ledger) rehash(dst, hash string) {
	if e, ok := l.entries[filepath.Base(dst)]; ok {
		e.Hash = hash
		l.dirty = true
	}
}

// save writes the ledger through a temp file and rename
func (l *ledger) save() error {
	if !l.dirty {
		return nil
	}
	data, err := yaml.Marshal(l.entries)
	if err != nil {
		return err
	}
	tmp := l.path + ".tmp"
	if err = os.WriteFile(tmp, data, os.FileMode(0644)); err != nil {
		return err
	}
	if err = os.Rename(tmp, l.path); err != nil {
		os.Remove(tmp)
		return err
	}
	l.dirty = false
	return nil
}
