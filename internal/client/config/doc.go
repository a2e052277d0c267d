// Package config loads the terminal client's settings.
//
// Sources are applied in order, later ones winning:
//
//  1. defaults (LoadDefaults)
//  2. a JSON file named by -c/-config or $GOPHJOURNAL_CONFIG
//  3. command-line flags
//
// Flags:
//
//	-a string    API base URL (default "http://localhost:5000/api")
//	-t duration  per-request timeout (default 10s)
//	-d string    local database path
//	-q string    YAML quote catalog replacing the built-in one
//	-l string    log level: debug, info, warn, error (default "warn")
package config
