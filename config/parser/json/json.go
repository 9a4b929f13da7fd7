package json

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
)

// ErrEmptyData is returned when the input data is empty or whitespace only.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path selects nothing in the JSON document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals JSON data, or the section selected by path, into target.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := gojson.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := gojson.CreatePath(convertToJSONPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	values, err := pathObj.Extract(data)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	if len(values) == 0 {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	err = gojson.Unmarshal(values[0], target)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

func convertToJSONPath(path string) string {
	return "$." + strings.ReplaceAll(path, ":", ".")
}
