// Package project loads the optional per-project configuration file
// (.scaffgen.yaml) found in the working directory or a parent. The file can
// pin per-mode output directories, a default overwrite policy, a local
// template directory that shadows the built-in sets, and a semver constraint
// on the tool version. Contents are validated against an embedded JSON
// Schema before use so a malformed file fails with field-level messages
// instead of surfacing as confusing behavior later.
package project
