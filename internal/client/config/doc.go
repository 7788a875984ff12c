// Package config loads runtime configuration for the jiraclone CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables.
//  4. Command-line flags.
//
// Later sources override earlier ones. The result is validated before it is
// returned.
//
// Supported flags
//
//	-a string   backend base URL, e.g. http://localhost:8082/api
//	-d string   path to the local SQLite database
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	API_URL, CLIENT_DB, LOG_LEVEL, LOG_FORMAT, REQUEST_TIMEOUT
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:8082/api",
//	  "client_db": "jiraclone.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "request_timeout": "30s"
//	}
package config
