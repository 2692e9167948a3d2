// Package cli implements the textframe command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Settings
// come from an optional TOML file (see package config) and flags.
//
// # Commands
//
//   - render: Frame text from an argument, a file or stdin
//   - invoke: Run a registered command locally or on a remote server
//   - commands: List registered commands
//   - serve: Expose the command registry over HTTP
//   - tui: Edit text with a live framed preview
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli
