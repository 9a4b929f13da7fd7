package file

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrEmptyPath is returned when the Fetcher is constructed with an empty path.
var ErrEmptyPath = errors.New("path must not be empty")

// Fetcher implements config.DataFetcher for a single file on an afero.Fs.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor that reads fpath from the given filesystem.
// The filesystem is a constructor parameter so Fx can inject it.
func NewFetcher(fpath string) func(afero.Fs) (*Fetcher, error) {
	return func(fsys afero.Fs) (*Fetcher, error) {
		if fpath == "" {
			return nil, ErrEmptyPath
		}

		cleanPath := filepath.Clean(fpath)

		stat, err := fsys.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := afero.ReadFile(fsys, cleanPath)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the data read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
