// Package server exposes a [command.Registry] over HTTP.
//
// # Routes
//
//	GET  /healthz            liveness probe, returns "ok"
//	GET  /version            build information as JSON
//	GET  /commands           {"commands": ["greet", "render_frame"]}
//	POST /invoke/{command}   body: JSON arguments, response: {"result": ...}
//
// Failures are returned as {"error": {"code": "...", "message": "..."}} with
// a status derived from the error code: 400 for INVALID_*, 404 for unknown
// commands, 500 otherwise.
//
// Every response carries an X-Request-ID header. A client-supplied ID is
// echoed back; otherwise a random UUID is assigned.
package server
