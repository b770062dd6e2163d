// Package config loads the settings of the metadata tools.
//
// Configuration is read in layers: built-in defaults, then each file added
// with AddLayer (JSON or YAML, chosen by extension), then RDFMETA_*
// environment variables. Later layers override earlier ones key by key.
//
//	loader := config.NewLoader()
//	loader.AddLayer("rdfmeta.yaml")
//	loader.AddLayer("rdfmeta.local.json")
//	loader.EnableValidation(true)
//
//	cfg, err := loader.Load()
//
// A YAML layer looks like:
//
//	directories:
//	  - ./metadata
//	  - /usr/share/app/metadata
//	cache:
//	  enabled: true
//	  strategy: lru
//	  max_size: 500
//	log:
//	  level: debug
//	  format: json
//
// Relative directories in a file are resolved against the directory holding
// that file. Recognised environment variables:
//
//	RDFMETA_DIRECTORIES     list separated by the OS path list separator
//	RDFMETA_LOG_LEVEL       debug, info, warn or error
//	RDFMETA_LOG_FORMAT      json or text
//	RDFMETA_CACHE_ENABLED   true or false
//	RDFMETA_CACHE_STRATEGY  simple or lru
//	RDFMETA_CACHE_MAX_SIZE  positive integer
package config
