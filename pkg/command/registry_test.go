package command

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/textframe/pkg/errors"
	"github.com/matzehuels/textframe/pkg/observability"
)

func echo(_ context.Context, args json.RawMessage) (any, error) {
	return args, nil
}

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("echo", echo))
	require.True(t, r.Has("echo"))

	err := r.Register("echo", echo)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "duplicate: %v", err)

	err = r.Register("", echo)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "empty: %v", err)

	err = r.Register("Bad-Name", echo)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "invalid: %v", err)

	err = r.Register("nil_handler", nil)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "nil handler: %v", err)
	require.False(t, r.Has("nil_handler"))
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("echo", echo)
	require.Panics(t, func() { r.MustRegister("echo", echo) })
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("zeta", echo)
	r.MustRegister("alpha", echo)
	r.MustRegister("mid", echo)

	require.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestInvokeUnknownCommand(t *testing.T) {
	_, err := NewRegistry().Invoke(context.Background(), "missing", nil)
	require.True(t, errors.Is(err, errors.ErrCodeCommandNotFound), "got %v", err)
}

func TestInvokeArgs(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("echo", echo)
	ctx := context.Background()

	out, err := r.Invoke(ctx, "echo", nil)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(out))

	out, err = r.Invoke(ctx, "echo", json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1}`, string(out))

	_, err = r.Invoke(ctx, "echo", json.RawMessage(`{"a":`))
	require.True(t, errors.Is(err, errors.ErrCodeInvalidArgs), "got %v", err)

	_, err = r.Invoke(ctx, "echo", json.RawMessage("{\"a\":\"\xff\"}"))
	require.True(t, errors.Is(err, errors.ErrCodeInvalidEncoding), "got %v", err)
}

func TestInvokeCanceledContext(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("echo", echo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Invoke(ctx, "echo", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestInvokeEncodeFailure(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("bad", func(context.Context, json.RawMessage) (any, error) {
		return make(chan int), nil
	})

	_, err := r.Invoke(context.Background(), "bad", nil)
	require.True(t, errors.Is(err, errors.ErrCodeInternal), "got %v", err)
}

func TestInvokeHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetCommandHooks(hooks)
	t.Cleanup(observability.Reset)

	r := NewRegistry()
	r.MustRegister("echo", echo)

	_, err := r.Invoke(context.Background(), "echo", nil)
	require.NoError(t, err)
	_, err = r.Invoke(context.Background(), "echo", json.RawMessage(`nope`))
	require.Error(t, err)

	require.Equal(t, []string{"echo", "echo"}, hooks.started)
	require.Len(t, hooks.errs, 2)
	require.NoError(t, hooks.errs[0])
	require.Error(t, hooks.errs[1])
}

type recordingHooks struct {
	observability.NoopCommandHooks
	started []string
	errs    []error
}

func (h *recordingHooks) OnInvokeStart(_ context.Context, name string) {
	h.started = append(h.started, name)
}

func (h *recordingHooks) OnInvokeComplete(_ context.Context, _ string, _ time.Duration, err error) {
	h.errs = append(h.errs, err)
}
