// Package command dispatches named commands with JSON arguments.
//
// A [Registry] is the bridge between a transport (the CLI, the HTTP server)
// and the functions it exposes. Callers name a command and pass its
// arguments as a JSON object; the registry decodes them, runs the handler
// and returns the JSON-encoded result.
//
//	reg := command.Default()
//	out, err := reg.Invoke(ctx, "render_frame", json.RawMessage(`{"text":"abc"}`))
//	// out == `"+ --- +\n│ abc │\n+ --- +"`
//
// # Built-in Commands
//
//   - render_frame: {"text": string} → framed string (see package frame)
//   - greet: {"name": string} → greeting string
//
// Every invocation is reported to [observability.Command].
package command
