// Package config loads typed configuration sections from raw documents.
//
// Four extension points make up the pipeline run by Provider:
//   - DataFetcher: retrieves raw bytes (config/fetcher/file reads them through afero)
//   - Parser: decodes a section of the data (config/parser/yaml, config/parser/json)
//   - Defaulter: fills unset fields
//   - Validator: rejects invalid values
//
// # Path Navigation
//
// Paths use colon (:) as the separator:
//
//	"model_trainer:params"  -> config["model_trainer"]["params"]
//	"data_ingestion"        -> config["data_ingestion"]
//	""                      -> entire document
//
// # Example
//
//	type IngestionConfig struct {
//	    RootDir   string `yaml:"root_dir"`
//	    SourceURL string `yaml:"source_url"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher("config/config.yaml")(afero.NewOsFs())
//	provider := config.Provider(&IngestionConfig{}, "data_ingestion")
//	cfg, err := provider(yamlparser.NewParser(), fetcher, logger)
package config
