// Package pkg provides the libraries behind textframe.
//
// # Overview
//
// textframe draws text inside a box whose border follows the display width
// of each character. The pkg directory is organized as:
//
//  1. [frame] - The renderer (width classification, lines, borders)
//  2. [command] - Named commands with JSON arguments
//  3. [server] and [client] - HTTP transport for the command registry
//  4. [config], [errors], [observability], [buildinfo], [httputil] - Support
//
// # Data Flow
//
//	caller (CLI, HTTP, TUI)
//	         ↓
//	    [command] registry (decode, validate)
//	         ↓
//	    [frame].Render
//	         ↓
//	    framed string, line breaks included
//
// # Quick Start
//
//	import "github.com/matzehuels/textframe/pkg/frame"
//
//	fmt.Println(frame.Render("あいうえお\nあいうえお"))
//	// + ーーーーー +
//	// │ あいうえお │
//	// │ あいうえお │
//	// + ーーーーー +
package pkg
