package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
data_ingestion:
  root_dir: artifacts/data_ingestion
  source_url: https://example.com/winequality.zip
`)

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "config/config.yaml", content, 0o600))

	fetcher, err := NewFetcher("config/config.yaml")(fsys)
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_OsFs(t *testing.T) {
	t.Parallel()

	content := []byte("target_column: quality\n")

	configPath := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	fetcher, err := NewFetcher(configPath)(afero.NewOsFs())
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/config.yaml")(afero.NewMemMapFs())

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_Fetch_EmptyPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("")(afero.NewMemMapFs())

	require.ErrorIs(t, err, ErrEmptyPath)
	assert.Nil(t, fetcher)
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "empty.yaml", []byte{}, 0o600))

	fetcher, err := NewFetcher("empty.yaml")(fsys)
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_Path_IsCleaned(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "config/params.yaml", []byte("alpha: 0.2"), 0o600))

	fetcher, err := NewFetcher("config/./sub/../params.yaml")(fsys)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("config/params.yaml"), fetcher.Path())
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("artifacts", 0o755))

	fetcher, err := NewFetcher("artifacts")(fsys)

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	originalContent := []byte(`version: "1.0"`)
	modifiedContent := []byte(`version: "2.0"`)

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "config.yaml", originalContent, 0o600))

	fetcher, err := NewFetcher("config.yaml")(fsys)
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fsys, "config.yaml", modifiedContent, 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, originalContent, data, "Fetch should return cached data, not current file content")
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte(`original: value`)

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "config.yaml", content, 0o600))

	fetcher, err := NewFetcher("config.yaml")(fsys)
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, data2, "Fetch should return unmodified cached data")
}
