package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/textframe/pkg/errors"
	"github.com/matzehuels/textframe/pkg/frame"
)

// Built-in command names.
const (
	RenderFrame = "render_frame"
	Greet       = "greet"
)

// RenderFrameArgs are the arguments of the render_frame command.
type RenderFrameArgs struct {
	Text string `json:"text"`
}

// GreetArgs are the arguments of the greet command.
type GreetArgs struct {
	Name string `json:"name"`
}

// Default returns a registry holding the built-in commands.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(RenderFrame, renderFrame)
	r.MustRegister(Greet, greet)
	return r
}

// renderFrame forwards decoded text to frame.Render and returns the frame
// verbatim, line breaks included.
func renderFrame(_ context.Context, raw json.RawMessage) (any, error) {
	var args RenderFrameArgs
	if err := decodeArgs(RenderFrame, raw, &args); err != nil {
		return nil, err
	}
	if err := errors.ValidateText(args.Text); err != nil {
		return nil, err
	}
	return frame.Render(args.Text), nil
}

func greet(_ context.Context, raw json.RawMessage) (any, error) {
	var args GreetArgs
	if err := decodeArgs(Greet, raw, &args); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", args.Name), nil
}
