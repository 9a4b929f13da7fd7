package store

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-fileio/artifact"
	filefetcher "github.com/0xalexb/hjarta-fileio/config/fetcher/file"
	jsonparser "github.com/0xalexb/hjarta-fileio/config/parser/json"
	yamlparser "github.com/0xalexb/hjarta-fileio/config/parser/yaml"

	"github.com/spf13/afero"
)

const (
	opReadYAML          = "read yaml"
	opCreateDirectories = "create directory"
	opSaveJSON          = "save json"
	opLoadJSON          = "load json"
	opSaveBin           = "save bin"
	opLoadBin           = "load bin"
)

// Store performs the file operations on a filesystem.
// It holds only immutable configuration and is safe for concurrent use.
type Store struct {
	fs          afero.Fs
	cfg         Config
	compression artifact.Compression
	logger      *slog.Logger
	yaml        *yamlparser.Parser
	json        *jsonparser.Parser
}

// New creates a Store. A nil fsys means the OS filesystem and a nil logger
// discards log output. Unset Config fields get their defaults.
func New(fsys afero.Fs, cfg Config, logger *slog.Logger) (*Store, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	compression, err := artifact.ParseCompression(cfg.Compression)
	if err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Store{
		fs:          fsys,
		cfg:         cfg,
		compression: compression,
		logger:      logger,
		yaml:        yamlparser.NewParser(),
		json:        jsonparser.NewParser(),
	}, nil
}

// Config returns the effective configuration.
func (s *Store) Config() Config {
	return s.cfg
}

// read returns the content of the file at path, classified as ErrIO on failure.
func (s *Store) read(op, path string) ([]byte, error) {
	if path == "" {
		return nil, wrap(op, path, ErrIO, ErrEmptyPath)
	}

	fetcher, err := filefetcher.NewFetcher(path)(s.fs)
	if err != nil {
		return nil, wrap(op, path, ErrIO, err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, wrap(op, path, ErrIO, err)
	}

	return data, nil
}

// write replaces the file at path with data.
func (s *Store) write(op, path string, data []byte) error {
	if path == "" {
		return wrap(op, path, ErrIO, ErrEmptyPath)
	}

	err := afero.WriteFile(s.fs, path, data, s.cfg.FilePerm)
	if err != nil {
		return wrap(op, path, ErrIO, err)
	}

	return nil
}

// fail logs a failed operation and returns err unchanged.
func (s *Store) fail(op, path string, err error) error {
	s.logger.Error("file operation failed",
		slog.String("op", op),
		slog.String("path", path),
		slog.Any("error", err),
	)

	return err
}
