package export

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careboard/internal/domain"
)

func TestWriteTable(t *testing.T) {
	dir := t.TempDir()

	tbl := domain.Table{
		Entity:  domain.EntityHospital,
		Title:   "Hospitals",
		Columns: []string{"ID", "Name", "Location"},
	}
	rows := []domain.Row{
		{Key: "1", Cells: []string{"1", "Apollo, Chennai", "Chennai"}},
		{Key: "2", Cells: []string{"2", "Fortis", "Delhi"}},
	}

	path, size, err := WriteTable(dir, tbl, rows)
	require.NoError(t, err)
	assert.Positive(t, size)
	assert.Contains(t, path, "careboard_hospitals_")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, tbl.Columns, records[0])
	assert.Equal(t, []string{"1", "Apollo, Chennai", "Chennai"}, records[1], "embedded commas survive the round trip")
	assert.Equal(t, []string{"2", "Fortis", "Delhi"}, records[2])
}

func TestWriteTable_VisibleRowsOnly(t *testing.T) {
	dir := t.TempDir()

	tbl := domain.Table{Entity: domain.EntityContact, Columns: []string{"ID"}}

	// The caller passes the filtered subset; nothing else leaks in.
	path, _, err := WriteTable(dir, tbl, nil)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestWriteTable_BadDir(t *testing.T) {
	_, _, err := WriteTable("/nonexistent/subdir", domain.Table{Entity: domain.EntityDoctor}, nil)
	assert.Error(t, err)
}
