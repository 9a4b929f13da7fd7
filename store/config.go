package store

import (
	"fmt"
	"io/fs"

	"github.com/0xalexb/hjarta-fileio/artifact"
)

const (
	// DefaultDirPerm is the permission used for created directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the permission used for written files.
	DefaultFilePerm fs.FileMode = 0o644
	// DefaultCompression is the artifact compression used by SaveBin.
	DefaultCompression = "none"
)

// Config holds the settings of a Store. It implements config.Defaulter and
// config.Validator, so it can be loaded with config.Provider.
type Config struct {
	DirPerm     fs.FileMode `json:"dir_perm"    yaml:"dir_perm"`
	FilePerm    fs.FileMode `json:"file_perm"   yaml:"file_perm"`
	Compression string      `json:"compression" yaml:"compression"`
}

// SetDefaults fills unset fields and reports whether anything changed.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.DirPerm == 0 {
		c.DirPerm = DefaultDirPerm
		changed = true
	}

	if c.FilePerm == 0 {
		c.FilePerm = DefaultFilePerm
		changed = true
	}

	if c.Compression == "" {
		c.Compression = DefaultCompression
		changed = true
	}

	return changed
}

// Validate checks the permissions and the compression name.
func (c *Config) Validate() error {
	if c.DirPerm&^fs.ModePerm != 0 {
		return fmt.Errorf("dir_perm %o: %w", c.DirPerm, ErrInvalidPermission)
	}

	if c.FilePerm&^fs.ModePerm != 0 {
		return fmt.Errorf("file_perm %o: %w", c.FilePerm, ErrInvalidPermission)
	}

	_, err := artifact.ParseCompression(c.Compression)
	if err != nil {
		return fmt.Errorf("compression: %w", err)
	}

	return nil
}

// Option defines a function type for configuring a Store.
type Option func(*Config)

// WithDirPerm sets the permission of directories created by CreateDirectories.
func WithDirPerm(perm fs.FileMode) Option {
	return func(cfg *Config) {
		cfg.DirPerm = perm
	}
}

// WithFilePerm sets the permission of files written by SaveJSON and SaveBin.
func WithFilePerm(perm fs.FileMode) Option {
	return func(cfg *Config) {
		cfg.FilePerm = perm
	}
}

// WithCompression sets the artifact compression, "none" or "zstd".
func WithCompression(name string) Option {
	return func(cfg *Config) {
		cfg.Compression = name
	}
}
