// Package file provides a file-based DataFetcher implementation for the config package.
//
// Files are read through an afero.Fs, so the same fetcher serves the real
// filesystem (afero.NewOsFs) and in-memory filesystems in tests
// (afero.NewMemMapFs). The file is read once at construction time and cached.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/params.yaml")(afero.NewOsFs())
//	if err != nil {
//	    // missing file, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Errors keep the underlying fs error in their chain, so
// errors.Is(err, fs.ErrNotExist) and errors.Is(err, file.ErrPathIsDirectory)
// both work on construction errors.
package file
