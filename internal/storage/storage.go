package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/tilegen/internal/config"
	"github.com/OCharnyshevich/tilegen/internal/report"
)

// Storage handles file-based persistence for run config and reports.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating it as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &Storage{dir: dir, log: log}, nil
}

// Dir returns the root directory.
func (s *Storage) Dir() string { return s.dir }

// LoadConfig reads config.json into cfg. If the file does not exist, cfg is unchanged.
func (s *Storage) LoadConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return s.readConfig(path, cfg)
}

// FetchConfig downloads a config file from any go-getter source (local
// path, http(s), git, s3, gcs...) and reads it into cfg.
func (s *Storage) FetchConfig(ctx context.Context, src string, cfg *config.Config) error {
	tmp, err := os.MkdirTemp("", "tilegen-config-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	dst := filepath.Join(tmp, "config.json")
	client := &get.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: get.ClientModeFile,
	}
	s.log.Debug("fetching config", "src", src)
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch config %s: %w", src, err)
	}
	return s.readConfig(dst, cfg)
}

func (s *Storage) readConfig(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.log.Info("loaded config from file", "path", path)
	return nil
}

// SaveReport writes the run summary to report.json atomically.
func (s *Storage) SaveReport(r *report.Summary) error {
	path := filepath.Join(s.dir, "report.json")
	if err := s.atomicWriteJSON(path, r); err != nil {
		return err
	}
	s.log.Info("saved report", "path", path)
	return nil
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
