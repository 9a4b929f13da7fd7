package store

import (
	"log/slog"

	"github.com/goccy/go-json"
)

const jsonIndent = "    "

// SaveJSON writes data to path as JSON indented with four spaces, replacing any
// existing file. Nothing is written when a value is not representable in JSON.
// A nil Document is saved as an empty object.
func (s *Store) SaveJSON(path string, data Document) error {
	if data == nil {
		data = Document{}
	}

	encoded, err := json.MarshalIndent(data, "", jsonIndent)
	if err != nil {
		return s.fail(opSaveJSON, path, wrap(opSaveJSON, path, ErrSerialize, err))
	}

	err = s.write(opSaveJSON, path, encoded)
	if err != nil {
		return s.fail(opSaveJSON, path, err)
	}

	s.logger.Info("json file saved", slog.String("path", path))

	return nil
}

// LoadJSON reads the JSON object at path.
func (s *Store) LoadJSON(path string) (Document, error) {
	data, err := s.read(opLoadJSON, path)
	if err != nil {
		return nil, s.fail(opLoadJSON, path, err)
	}

	var content map[string]any

	err = s.json.Parse(data, &content, "")
	if err != nil {
		return nil, s.fail(opLoadJSON, path, wrap(opLoadJSON, path, ErrParse, err))
	}

	if content == nil {
		return nil, s.fail(opLoadJSON, path, wrap(opLoadJSON, path, ErrParse, ErrNotObject))
	}

	s.logger.Info("json file loaded", slog.String("path", path))

	return Document(content), nil
}
