package store_test

import (
	"log/slog"
	"testing"

	"github.com/0xalexb/hjarta-fileio/config"
	filefetcher "github.com/0xalexb/hjarta-fileio/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-fileio/config/parser/yaml"
	"github.com/0xalexb/hjarta-fileio/store"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func newFxApp(t *testing.T, target **store.Store, options ...fx.Option) *fx.App {
	t.Helper()

	options = append(options,
		fx.NopLogger,
		fx.Supply(slog.New(slog.DiscardHandler)),
		fx.Populate(target),
	)

	return fx.New(options...)
}

func TestNewModule_WithOptions(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()

	var s *store.Store

	app := newFxApp(t, &s,
		fx.Provide(func() afero.Fs { return fsys }),
		store.NewModule(store.WithCompression("zstd"), store.WithFilePerm(0o600)),
	)
	require.NoError(t, app.Err())
	require.NotNil(t, s)

	assert.Equal(t, "zstd", s.Config().Compression)
	assert.Equal(t, store.DefaultDirPerm, s.Config().DirPerm)

	require.NoError(t, s.CreateDirectories([]string{"artifacts"}, store.Quiet()))

	exists, err := afero.DirExists(fsys, "artifacts")
	require.NoError(t, err)
	assert.True(t, exists, "the injected filesystem should be used")
}

func TestNewModule_Defaults(t *testing.T) {
	t.Parallel()

	var s *store.Store

	app := newFxApp(t, &s, store.NewModule())
	require.NoError(t, app.Err())
	require.NotNil(t, s)

	assert.Equal(t, store.DefaultCompression, s.Config().Compression)
}

func TestNewModule_InvalidOptions(t *testing.T) {
	t.Parallel()

	var s *store.Store

	app := newFxApp(t, &s, store.NewModule(store.WithCompression("brotli")))

	require.Error(t, app.Err())
}

func TestNewModule_ConfigFromYAML(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "config/config.yaml", []byte(`
artifacts_root: artifacts
store:
  compression: zstd
  dir_perm: 488
`), 0o644))

	var s *store.Store

	app := newFxApp(t, &s,
		fx.Provide(func() afero.Fs { return fsys }),
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher("config/config.yaml"),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider(new(store.Config), "store")),
		store.NewModule(),
	)
	require.NoError(t, app.Err())
	require.NotNil(t, s)

	assert.Equal(t, "zstd", s.Config().Compression)
	assert.Equal(t, store.DefaultFilePerm, s.Config().FilePerm)
	assert.Equal(t, 0o750, int(s.Config().DirPerm))
}
