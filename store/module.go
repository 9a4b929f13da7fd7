package store

import (
	"log/slog"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// Params are the dependencies of a Store in the Fx container.
// Fs and Config are optional: the OS filesystem and the default Config are used when absent.
type Params struct {
	fx.In

	Fs     afero.Fs `optional:"true"`
	Config *Config  `optional:"true"`
	Logger *slog.Logger
}

// NewFromParams creates a Store from injected dependencies.
func NewFromParams(params Params) (*Store, error) {
	var cfg Config
	if params.Config != nil {
		cfg = *params.Config
	}

	return New(params.Fs, cfg, params.Logger)
}

// NewModule creates an Fx module that provides *Store.
// When options are given, the module supplies the resulting *Config itself.
// Otherwise a *Config may be provided externally (e.g., via config.Provider).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var moduleOpts []fx.Option

	if len(opts) > 0 {
		cfg := &Config{}

		for _, apply := range opts {
			apply(cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(cfg))
	}

	moduleOpts = append(moduleOpts, fx.Provide(NewFromParams))

	return fx.Module("store", moduleOpts...)
}
