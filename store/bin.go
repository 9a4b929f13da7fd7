package store

import (
	"bytes"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/0xalexb/hjarta-fileio/artifact"
)

// SaveBin serialises value as a binary artifact at path, replacing any existing
// file. Nothing is written when the value cannot be serialised.
// Only exported struct fields are persisted; unexported fields are skipped
// and load back as their zero value.
func (s *Store) SaveBin(value any, path string) error {
	var buf bytes.Buffer

	err := artifact.Encode(&buf, value, s.compression)
	if err != nil {
		return s.fail(opSaveBin, path, wrap(opSaveBin, path, ErrSerialize, err))
	}

	err = s.write(opSaveBin, path, buf.Bytes())
	if err != nil {
		return s.fail(opSaveBin, path, err)
	}

	s.logger.Info("binary file saved",
		slog.String("path", path),
		slog.String("compression", s.compression.String()),
	)

	return nil
}

// LoadBin deserialises the artifact at path into target, which must be a non-nil pointer.
// Artifacts written with any supported compression can be loaded.
func (s *Store) LoadBin(path string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return s.fail(opLoadBin, path, fmt.Errorf("%s %q: %w: got %T", opLoadBin, path, ErrInvalidTarget, target))
	}

	data, err := s.read(opLoadBin, path)
	if err != nil {
		return s.fail(opLoadBin, path, err)
	}

	err = artifact.Decode(bytes.NewReader(data), target)
	if err != nil {
		return s.fail(opLoadBin, path, wrap(opLoadBin, path, ErrParse, err))
	}

	s.logger.Info("binary file loaded", slog.String("path", path))

	return nil
}

// LoadBinValue deserialises the artifact at path without a target type.
// Objects come back as map[string]any and lists as []any. Numbers decode to
// the narrowest type their encoding allows, so 1 saved as int loads as int8.
// Use LoadBinAs when the original types matter.
func (s *Store) LoadBinValue(path string) (any, error) {
	var value any

	err := s.LoadBin(path, &value)
	if err != nil {
		return nil, err
	}

	return value, nil
}

// LoadBinAs deserialises the artifact at path into a value of type T.
func LoadBinAs[T any](s *Store, path string) (T, error) {
	var value T

	err := s.LoadBin(path, &value)
	if err != nil {
		var zero T

		return zero, err
	}

	return value, nil
}
