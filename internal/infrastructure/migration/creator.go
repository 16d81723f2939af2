package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MigrationFile describes the up/down pair produced by CreateMigration.
type MigrationFile struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

const migrationStub = `-- Migration: %s
-- Created: %s
-- Description: %s

-- Write your %s migration SQL here

`

// CreateMigration writes an empty up/down migration pair into dir. The
// version prefix is the creation timestamp so golang-migrate applies files
// in chronological order.
func CreateMigration(dir, name, description string) (*MigrationFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create migrations directory: %w", err)
	}

	now := time.Now()
	mf := &MigrationFile{
		Version: now.Format("20060102150405"),
		Name:    name,
	}
	base := mf.Version + "_" + sanitizeName(name)
	mf.UpPath = filepath.Join(dir, base+".up.sql")
	mf.DownPath = filepath.Join(dir, base+".down.sql")

	created := now.Format(time.RFC3339)
	up := fmt.Sprintf(migrationStub, name, created, description, "UP")
	down := fmt.Sprintf(migrationStub, name+" (Rollback)", created, "Rollback for "+description, "DOWN")

	if err := os.WriteFile(mf.UpPath, []byte(up), 0o644); err != nil {
		return nil, fmt.Errorf("write up migration: %w", err)
	}
	if err := os.WriteFile(mf.DownPath, []byte(down), 0o644); err != nil {
		os.Remove(mf.UpPath)
		return nil, fmt.Errorf("write down migration: %w", err)
	}
	return mf, nil
}

// sanitizeName lowercases a migration name and collapses separators into
// single underscores so it is safe as a file name.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			if s := b.String(); s != "" && !strings.HasSuffix(s, "_") {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// ListMigrations returns the migration base names found in dir, derived
// from the .up.sql files. A missing directory is treated as empty.
func ListMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			names = append(names, base)
		}
	}
	return names, nil
}
