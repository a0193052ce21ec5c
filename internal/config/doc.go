// Package config loads, normalizes, and validates libris configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ISBNDB_API_KEY. The Config type centralizes every knob the command loop and
// CLI need: database location, catalog output path, scanner serial settings,
// and bibliographic API credentials.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
