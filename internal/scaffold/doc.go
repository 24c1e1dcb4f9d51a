// Package scaffold generates frontend source files from embedded templates.
// It powers the "scaffgen generate" command, producing the file structure for
// each mode (component, hook, context) with the identifier's derived naming
// forms substituted in. Writes honor an overwrite policy so a generated
// scaffold never clobbers existing work without consent.
package scaffold
