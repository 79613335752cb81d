package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bilanco-dev/bilanco/internal/config"
	"github.com/bilanco-dev/bilanco/internal/export"
	"github.com/bilanco-dev/bilanco/internal/schema"
	"github.com/bilanco-dev/bilanco/internal/sheet"
	"github.com/bilanco-dev/bilanco/internal/store"
)

// workspace bundles what a command needs after loading the configuration.
type workspace struct {
	dir    string
	cfg    *config.Config
	schema *schema.Schema
	store  *store.Service
}

func openWorkspace(dir string) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, err
	}

	s, err := loadSchema(absDir, cfg)
	if err != nil {
		return nil, err
	}

	storeDir := cfg.Store.Dir
	if !filepath.IsAbs(storeDir) {
		storeDir = filepath.Join(absDir, storeDir)
	}

	return &workspace{
		dir:    absDir,
		cfg:    cfg,
		schema: s,
		store:  store.NewService(storeDir, s),
	}, nil
}

func loadSchema(dir string, cfg *config.Config) (*schema.Schema, error) {
	if cfg.Schema.File == "" {
		return schema.Default(), nil
	}
	path := cfg.Schema.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return schema.Load(path)
}

// draft loads the working sheet; a missing draft file means an empty sheet.
func (w *workspace) draft() (*sheet.BalanceSheet, error) {
	b, err := w.store.LoadDraft()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sheet.New(w.schema, w.cfg.Company.Name, ""), nil
		}
		return nil, err
	}
	return b, nil
}

func (w *workspace) policy(now time.Time) (export.Policy, error) {
	tol, err := w.cfg.Tolerance()
	if err != nil {
		return export.Policy{}, err
	}
	return export.Policy{
		Tolerance:     tol,
		MaxFutureDays: w.cfg.Checks.MaxFutureDays,
		Now:           now,
	}, nil
}
