package timetable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func TestStore_builtinSchedule(t *testing.T) {
	store := NewStore("", nopLogger{})

	x, err := store.BySection("x")
	require.NoError(t, err)
	assert.Len(t, x, 3)
	assert.Equal(t, "Operating Systems", x[0].Subject)

	y, err := store.BySection("Y")
	require.NoError(t, err)
	assert.Len(t, y, 3)

	_, err = store.BySection("Z")
	assert.Equal(t, ErrNotFound, err)

	assert.Equal(t, []string{"X", "Y"}, store.Sections())
}

func TestStore_fileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.json")
	data := `{"z": [{"day":"Friday","time":"08:00 - 09:00","subject":"Compilers","faculty":"Dr. K. Das","room":"LH9"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	store := NewStore(path, nopLogger{})

	z, err := store.BySection("Z")
	require.NoError(t, err)
	require.Len(t, z, 1)
	assert.Equal(t, "Compilers", z[0].Subject)

	// file replaces the built-in schedule entirely
	_, err = store.BySection("X")
	assert.Equal(t, ErrNotFound, err)
}

func TestStore_malformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	store := NewStore(path, nopLogger{})
	_, err := store.BySection("X")
	assert.NoError(t, err)
}
