// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support. Colon-separated paths (e.g., "model_trainer:params")
// are converted to YAML path format (e.g., "$.model_trainer.params").
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var params TrainerParams
//	err := parser.Parse(data, &params, "model_trainer:params")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api:permissions" -> "$.api.permissions"
//
// Input that is empty or only whitespace fails with ErrEmptyData before any
// decoding happens.
package yaml
