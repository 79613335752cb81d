// Package store persists sheets below a workspace directory: the working
// draft a user is editing, plus an append-only archive of saved documents
// with ascending integer IDs.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/natefinch/atomic"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/bilanco-dev/bilanco/internal/export"
	"github.com/bilanco-dev/bilanco/internal/id"
	"github.com/bilanco-dev/bilanco/internal/schema"
	"github.com/bilanco-dev/bilanco/internal/sheet"
)

const (
	// DraftFile is the working sheet, saved even when incomplete.
	DraftFile = "draft.json"
	// ArchiveDir holds the saved documents.
	ArchiveDir = "archive"
)

// ErrNoDocuments is returned when the archive holds nothing yet.
var ErrNoDocuments = errors.New("no archived documents")

// Service reads and writes sheets below one workspace directory.
type Service struct {
	dir    string
	schema *schema.Schema
}

// NewService creates a Service rooted at dir, deserializing against s.
func NewService(dir string, s *schema.Schema) *Service {
	return &Service{dir: dir, schema: s}
}

// draftFile is the on-disk shape of the draft: raw session state only.
// Totals are never written; they are recomputed wherever they are needed.
type draftFile struct {
	CompanyName string                     `json:"companyName"`
	Date        string                     `json:"date"`
	Values      map[string]decimal.Decimal `json:"values,omitempty"`
}

// LoadDraft reads the working sheet.
func (s *Service) LoadDraft() (*sheet.BalanceSheet, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, DraftFile))
	if err != nil {
		return nil, fmt.Errorf("reading draft: %w", err)
	}
	var f draftFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing draft: %w", err)
	}

	b := sheet.New(s.schema, f.CompanyName, f.Date)
	for code, v := range f.Values {
		if err := b.SetValue(code, v); err != nil {
			return nil, fmt.Errorf("draft value %q: %w", code, err)
		}
	}
	return b, nil
}

// SaveDraft writes the working sheet atomically. Only non-zero values are
// stored; absent means zero.
func (s *Service) SaveDraft(b *sheet.BalanceSheet) error {
	f := draftFile{
		CompanyName: b.Company(),
		Date:        b.Date(),
		Values:      make(map[string]decimal.Decimal),
	}
	for _, it := range s.schema.Items() {
		if v := b.Value(it.Code); !v.IsZero() {
			f.Values[it.Code] = v
		}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(filepath.Join(s.dir, DraftFile), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	return nil
}

// Archive stamps the document with the next free sequence number and the save
// time, writes it, and returns the assigned ID. IDs ascend from 1; the next ID
// is always one past the highest on disk.
func (s *Service) Archive(doc *export.Document, now time.Time) (int, error) {
	dir := filepath.Join(s.dir, ArchiveDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating archive dir: %w", err)
	}
	seq, err := s.nextSeq(dir)
	if err != nil {
		return 0, err
	}

	doc.ID = seq
	doc.SavedAt = now.UTC().Format(time.RFC3339)

	var buf bytes.Buffer
	if err := export.EncodeDocument(&buf, doc); err != nil {
		return 0, err
	}
	if err := atomic.WriteFile(filepath.Join(dir, id.FormatDocName(seq)), &buf); err != nil {
		return 0, fmt.Errorf("writing document %d: %w", seq, err)
	}
	return seq, nil
}

func (s *Service) nextSeq(dir string) (int, error) {
	seqs, err := s.sequences(dir)
	if err != nil {
		return 0, err
	}
	if len(seqs) == 0 {
		return 1, nil
	}
	return seqs[len(seqs)-1] + 1, nil
}

func (s *Service) sequences(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	var seqs []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if seq, err := id.ParseDocName(e.Name()); err == nil {
			seqs = append(seqs, seq)
		}
	}
	sort.Ints(seqs)
	return seqs, nil
}

// Open reads one archived document by ID.
func (s *Service) Open(seq int) (doc *export.Document, err error) {
	f, err := os.Open(filepath.Join(s.dir, ArchiveDir, id.FormatDocName(seq)))
	if err != nil {
		return nil, fmt.Errorf("opening document %d: %w", seq, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return export.DecodeDocument(f)
}

// Latest returns the archived document with the highest ID.
func (s *Service) Latest() (*export.Document, error) {
	seqs, err := s.sequences(filepath.Join(s.dir, ArchiveDir))
	if err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, ErrNoDocuments
	}
	return s.Open(seqs[len(seqs)-1])
}

// Summary is one line of the archive listing. The side totals are recomputed
// from the stored leaf values, never read from the document's totals block.
type Summary struct {
	ID          int
	CompanyName string
	Date        string
	Aktif       decimal.Decimal
	Pasif       decimal.Decimal
	SavedAt     string
}

// List summarizes all archived documents in ascending ID order.
func (s *Service) List() ([]Summary, error) {
	seqs, err := s.sequences(filepath.Join(s.dir, ArchiveDir))
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, 0, len(seqs))
	for _, seq := range seqs {
		doc, err := s.Open(seq)
		if err != nil {
			return nil, err
		}
		aktif, pasif := export.DocumentTotals(doc)
		summaries = append(summaries, Summary{
			ID:          seq,
			CompanyName: doc.CompanyName,
			Date:        doc.Date,
			Aktif:       aktif,
			Pasif:       pasif,
			SavedAt:     doc.SavedAt,
		})
	}
	return summaries, nil
}
