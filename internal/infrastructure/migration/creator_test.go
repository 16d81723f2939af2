package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"add placements table", "add_placements_table"},
		{"Add-Placements-Table", "add_placements_table"},
		{"ADD_PLACEMENTS", "add_placements"},
		{"double__underscores", "double_underscores"},
		{"batch 2026 seed", "batch_2026_seed"},
		{"  padded  ", "padded"},
		{"drop!@#offers", "dropoffers"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add placements table", "Placement rounds per student")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14, "version is a YYYYMMDDHHMMSS timestamp")
	assert.Equal(t, mf.Version+"_add_placements_table.up.sql", filepath.Base(mf.UpPath))
	assert.Equal(t, mf.Version+"_add_placements_table.down.sql", filepath.Base(mf.DownPath))

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "add placements table")
	assert.Contains(t, string(up), "Placement rounds per student")
	assert.Contains(t, string(up), "UP migration SQL")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "Rollback")
	assert.Contains(t, string(down), "DOWN migration SQL")
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "db", "migrations")

	_, err := CreateMigration(nested, "seed batches", "")
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{
		"000001_init_schema.up.sql",
		"000001_init_schema.down.sql",
		"000002_add_students.up.sql",
		"000002_add_students.down.sql",
		"README.md",
		".gitkeep",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("-- sql"), 0o644))
	}
	// A directory that happens to match the suffix must be skipped.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.up.sql"), 0o755))

	names, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init_schema", "000002_add_students"}, names)
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	names, err := ListMigrations(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCreateMigration_PairsShareABaseName(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "offers per round", "")
	require.NoError(t, err)

	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)
}
