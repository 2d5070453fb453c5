// Package config loads faultkit settings and message catalogs.
//
// Settings come from a YAML file with environment-variable overrides (via
// Viper; variables use the FAULTKIT_ prefix) and an optional .env file.
// Message catalogs are directories of per-locale YAML files named
// messages.<locale>.yaml, each a flat code -> template mapping:
//
//	BAD_CONFIG: "Invalid configuration. File: {0}"
//	NOT_FOUND: "The requested resource was not found."
package config
