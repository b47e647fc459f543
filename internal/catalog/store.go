package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	"shipmark/internal/domain"
)

// catalogExtensions are the accepted backing-file formats, in the order the
// store probes for them. At most one backing file exists at a time.
var catalogExtensions = []string{".csv", ".xlsx", ".xls"}

const catalogBasename = "data"

// Snapshot is one immutable, fully-loaded copy of the catalog. Every reader
// of a request sees exactly one snapshot for its whole duration; reloads
// swap the pointer, never mutate rows in place.
type Snapshot struct {
	File    string
	ModTime int64
	Rows    []Row
}

// Store owns the process-wide catalog cache. Loads are lazy: the snapshot
// is built on first use and rebuilt whenever the backing file's modification
// time changes or Invalidate is called. Loading is side-effect free, so
// concurrent reloads are safe; the mutex only keeps them from duplicating
// work.
type Store struct {
	dir  string
	mu   sync.Mutex
	snap atomic.Pointer[Snapshot]
}

// NewStore creates a Store backed by files under dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// path returns the current backing file, or "" when none exists.
func (s *Store) path() string {
	for _, ext := range catalogExtensions {
		p := filepath.Join(s.dir, catalogBasename+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Get returns the current snapshot, reloading if the backing file changed.
// Returns domain.ErrCatalogUnavailable when no backing file exists or it
// cannot be parsed; matchers degrade to "no match" on that error.
func (s *Store) Get() (*Snapshot, error) {
	p := s.path()
	if p == "" {
		return nil, domain.ErrCatalogUnavailable
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, domain.ErrCatalogUnavailable
	}

	if snap := s.snap.Load(); snap != nil && snap.File == p && snap.ModTime == info.ModTime().UnixNano() {
		return snap, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have reloaded while we waited.
	if snap := s.snap.Load(); snap != nil && snap.File == p && snap.ModTime == info.ModTime().UnixNano() {
		return snap, nil
	}

	rows, err := loadFile(p)
	if err != nil {
		log.Printf("catalog.Store: failed to load %s: %v", p, err)
		return nil, domain.ErrCatalogUnavailable
	}

	snap := &Snapshot{File: p, ModTime: info.ModTime().UnixNano(), Rows: rows}
	s.snap.Store(snap)
	log.Printf("catalog.Store: loaded %d rows from %s", len(rows), filepath.Base(p))
	return snap, nil
}

// Invalidate drops the cached snapshot so the next Get reloads from disk.
func (s *Store) Invalidate() {
	s.snap.Store(nil)
}

// Replace atomically installs a new backing file: any existing catalog file
// is removed first so exactly one is ever authoritative, then the cache is
// invalidated. ext must include the leading dot; unknown extensions fall
// back to .csv.
func (s *Store) Replace(ext string, content io.Reader) error {
	valid := false
	for _, e := range catalogExtensions {
		if e == ext {
			valid = true
			break
		}
	}
	if !valid {
		ext = ".csv"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating catalog dir: %w", err)
	}
	for _, e := range catalogExtensions {
		old := filepath.Join(s.dir, catalogBasename+e)
		if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing old catalog: %w", err)
		}
	}

	dst := filepath.Join(s.dir, catalogBasename+ext)
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return fmt.Errorf("writing catalog file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing catalog file: %w", err)
	}

	s.snap.Store(nil)
	return nil
}

// Info describes the current catalog without forcing a reload failure into
// an error: an unreadable file reports zero records.
func (s *Store) Info() domain.CatalogInfo {
	p := s.path()
	if p == "" {
		return domain.CatalogInfo{}
	}
	snap, err := s.Get()
	if err != nil {
		return domain.CatalogInfo{CurrentFile: filepath.Base(p)}
	}
	return domain.CatalogInfo{TotalRecords: len(snap.Rows), CurrentFile: filepath.Base(p)}
}

// loadFile parses the backing file into normalized rows.
func loadFile(path string) ([]Row, error) {
	switch filepath.Ext(path) {
	case ".xlsx", ".xls":
		return loadExcel(path)
	default:
		return loadCSV(path)
	}
}

// loadCSV reads a delimited catalog. Files are tried as UTF-8 (with or
// without BOM) first, then re-decoded as Big5, matching the encodings the
// warehouse tooling exports.
func loadCSV(path string) ([]Row, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	if !utf8.Valid(raw) {
		decoded, _, derr := transform.Bytes(traditionalchinese.Big5.NewDecoder(), raw)
		if derr != nil {
			return nil, fmt.Errorf("decoding csv: %w", derr)
		}
		raw = decoded
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return buildRows(records[0], records[1:]), nil
}

// loadExcel reads the first sheet of a spreadsheet catalog.
func loadExcel(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return buildRows(records[0], records[1:]), nil
}
