package store

import "log/slog"

type dirOptions struct {
	verbose bool
}

// DirOption configures CreateDirectories.
type DirOption func(*dirOptions)

// Quiet disables the per-directory log line.
func Quiet() DirOption {
	return func(o *dirOptions) {
		o.verbose = false
	}
}

// CreateDirectories creates every path, including missing parents. Existing
// directories are left alone. It stops at the first path that cannot be created.
func (s *Store) CreateDirectories(paths []string, opts ...DirOption) error {
	options := dirOptions{verbose: true}

	for _, apply := range opts {
		apply(&options)
	}

	for _, path := range paths {
		if path == "" {
			return s.fail(opCreateDirectories, path, wrap(opCreateDirectories, path, ErrIO, ErrEmptyPath))
		}

		err := s.fs.MkdirAll(path, s.cfg.DirPerm)
		if err != nil {
			return s.fail(opCreateDirectories, path, wrap(opCreateDirectories, path, ErrIO, err))
		}

		if options.verbose {
			s.logger.Info("directory created", slog.String("path", path))
		}
	}

	return nil
}
