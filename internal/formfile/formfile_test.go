package formfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/recruitify/internal/model"
)

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.json")
	form := model.ApplicationForm{
		Name:        "Ada Lovelace",
		Email:       "ada@example.org",
		Resume:      "numbers person",
		JobID:       1,
		CoverLetter: "hello",
	}
	require.NoError(t, Write(path, form))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, form, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse form file")
}
