package fileio

import (
	"io"

	"github.com/0xalexb/hjarta-fileio/store"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
	Fs        afero.Fs
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithStore adds the store module, which provides *store.Store.
// Without options the store uses its defaults unless a *store.Config is provided by another module.
func WithStore(opts ...store.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, store.NewModule(opts...))
	}
}

// WithFs replaces the OS filesystem supplied to modules.
func WithFs(fsys afero.Fs) Option {
	return func(opts *Options) {
		opts.Fs = fsys
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets where logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
