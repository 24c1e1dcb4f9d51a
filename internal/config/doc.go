// Package config manages user-level settings stored at ~/.scaffgen/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// per-mode output directories and the default overwrite policy.
package config
