// Package config defines the service configuration, loaded from a YAML
// file with ${VAR} environment expansion, defaults, and validation.
package config
