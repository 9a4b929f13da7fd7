// Package logging builds the structured *slog.Logger that the application
// injects into its components. JSON is the default output format; "text" selects
// slog's key=value handler for local runs.
package logging
