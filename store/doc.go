// Package store reads and writes the files a data-science pipeline passes
// between its stages: YAML configuration, directories, JSON documents and
// binary model artifacts.
//
// Every operation is a single synchronous call that goes through an afero.Fs,
// logs one info line on success and one error line (with the path) on failure,
// and returns errors wrapped with one of the kinds ErrEmptyDocument, ErrIO,
// ErrParse or ErrSerialize. The original cause stays in the chain:
//
//	doc, err := s.ReadYAML("config/config.yaml")
//	switch {
//	case errors.Is(err, store.ErrEmptyDocument):
//	case errors.Is(err, fs.ErrNotExist):
//	}
//
// Writes overwrite existing files and are not atomic. Concurrent writers to the
// same path are last-writer-wins.
package store
