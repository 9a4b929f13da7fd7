package store

import (
	"errors"
	"log/slog"

	yamlparser "github.com/0xalexb/hjarta-fileio/config/parser/yaml"
)

// ReadYAML reads the YAML document at path.
//
// It returns ErrEmptyDocument when the file holds no content, only comments,
// null or an empty mapping, ErrIO when the file cannot be read and ErrParse for
// malformed YAML or a top level that is not a mapping.
func (s *Store) ReadYAML(path string) (Document, error) {
	data, err := s.read(opReadYAML, path)
	if err != nil {
		return nil, s.fail(opReadYAML, path, err)
	}

	var content map[string]any

	err = s.yaml.Parse(data, &content, "")
	if errors.Is(err, yamlparser.ErrEmptyData) {
		return nil, s.fail(opReadYAML, path, wrap(opReadYAML, path, ErrEmptyDocument, err))
	}

	if err != nil {
		return nil, s.fail(opReadYAML, path, wrap(opReadYAML, path, ErrParse, err))
	}

	if len(content) == 0 {
		return nil, s.fail(opReadYAML, path, wrap(opReadYAML, path, ErrEmptyDocument, yamlparser.ErrEmptyData))
	}

	s.logger.Info("yaml file loaded", slog.String("path", path))

	return Document(content), nil
}
