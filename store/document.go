package store

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Document is a parsed YAML or JSON object.
//
// Values are plain Go values: map[string]any for nested objects, []any for
// lists, and string, bool or numbers for scalars. YAML integers decode as
// uint64 or int64, JSON numbers as float64.
type Document map[string]any

// Get returns the value at a colon-separated path such as "model_trainer:params:alpha".
func (d Document) Get(path string) (any, bool) {
	var current any = map[string]any(d)

	for _, key := range strings.Split(path, ":") {
		var (
			value any
			found bool
		)

		switch node := current.(type) {
		case map[string]any:
			value, found = node[key]
		case Document:
			value, found = node[key]
		}

		if !found {
			return nil, false
		}

		current = value
	}

	return current, true
}

// GetDocument returns the nested object at path.
func (d Document) GetDocument(path string) (Document, bool) {
	value, ok := d.Get(path)
	if !ok {
		return nil, false
	}

	switch node := value.(type) {
	case map[string]any:
		return Document(node), true
	case Document:
		return node, true
	default:
		return nil, false
	}
}

// Decode copies the document into target, matching fields by their yaml tag.
func (d Document) Decode(target any) error {
	return d.DecodeTagged(target, "yaml")
}

// DecodeTagged copies the document into target, matching fields by the given struct tag.
// Strings convert to time.Duration and numbers convert between widths.
func (d Document) DecodeTagged(target any, tag string) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tag,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(map[string]any(d))
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	return nil
}
