// Package config manages user-level settings stored at ~/.tolvera/config.yaml.
// It loads defaults for the init command (target directory, template and
// manifest generation, Python constraint) and the logger, with every key
// overridable through TOLVERA_* environment variables.
package config
