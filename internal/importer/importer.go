// Package importer reads balance-sheet worksheets exported from other tools
// and resolves their rows against a schema. Parsing is lenient: rows that
// cannot be matched to a line item are collected, not fatal.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/schema"
)

// Entry is one resolved line-item value.
type Entry struct {
	Code  string
	Value decimal.Decimal
}

// Unmatched reports a worksheet row no line item could be found for.
type Unmatched struct {
	Line  int
	Label string
}

// Result is the outcome of parsing one worksheet.
type Result struct {
	Entries   []Entry
	Unmatched []Unmatched
}

// Parser converts one worksheet format into a Result.
type Parser interface {
	Parse(r io.Reader) (*Result, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers resolving
// against s.
func DefaultRegistry(s *schema.Schema) *Registry {
	r := NewRegistry()
	r.Register(NewRowsParser(s))
	r.Register(NewSimpleParser(s))
	return r
}

// FileInfo describes a worksheet waiting in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// importDir is the subdirectory worksheets are dropped into.
const importDir = "import"

// processedDir is where imported worksheets are moved afterwards.
const processedDir = "import/processed"

// Scan returns CSV worksheets in <dir>/import/.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(filepath.Join(dir, importDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, importDir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a worksheet from import/ to import/processed/.
func MarkProcessed(dir, fileName string) error {
	dstDir := filepath.Join(dir, processedDir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	src := filepath.Join(dir, importDir, fileName)
	if err := os.Rename(src, filepath.Join(dstDir, fileName)); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
