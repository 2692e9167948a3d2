package command

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/matzehuels/textframe/pkg/errors"
	"github.com/matzehuels/textframe/pkg/observability"
)

// Handler runs a command. args holds the raw JSON arguments, possibly empty.
// The returned value is JSON-encoded by the registry.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Registry maps command names to handlers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under name. Names must pass
// [errors.ValidateCommandName] and may only be registered once.
func (r *Registry) Register(name string, h Handler) error {
	if err := errors.ValidateCommandName(name); err != nil {
		return err
	}
	if h == nil {
		return errors.New(errors.ErrCodeInvalidInput, "command %q: nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[name]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "command %q already registered", name)
	}
	r.handlers[name] = h
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, h Handler) {
	if err := r.Register(name, h); err != nil {
		panic(err)
	}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// Invoke runs the command called name with args and returns its JSON
// result. Empty args are passed to the handler as "{}".
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (out json.RawMessage, err error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeCommandNotFound, "unknown command %q", name)
	}

	hooks := observability.Command()
	start := time.Now()
	hooks.OnInvokeStart(ctx, name)
	defer func() { hooks.OnInvokeComplete(ctx, name, time.Since(start), err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !utf8.Valid(args) {
		return nil, errors.New(errors.ErrCodeInvalidEncoding, "command %q: arguments are not valid UTF-8", name)
	}
	if len(bytes.TrimSpace(args)) == 0 {
		args = json.RawMessage("{}")
	}
	if !json.Valid(args) {
		return nil, errors.New(errors.ErrCodeInvalidArgs, "command %q: arguments are not valid JSON", name)
	}

	result, err := h(ctx, args)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "command %q: encode result", name)
	}
	return data, nil
}

// decodeArgs strictly decodes args into v.
func decodeArgs(name string, args json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(args))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgs, err, "command %q: decode arguments", name)
	}
	return nil
}
