// Package json provides a JSON parser implementation for the config package.
//
// It mirrors config/parser/yaml: the same colon-separated paths select a
// section of the document, translated to a JSONPath expression handled by
// github.com/goccy/go-json.
//
//	parser := json.NewParser()
//	var metrics Metrics
//	err := parser.Parse(data, &metrics, "evaluation:metrics")
package json
