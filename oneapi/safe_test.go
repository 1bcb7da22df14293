package oneapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafe(t *testing.T) {
	ctx := context.Background()

	t.Run("passes payload through", func(t *testing.T) {
		payload := map[string]any{"total": 3.0}
		op := Safe(func(context.Context, Request) (any, error) {
			return payload, nil
		})

		res := op(ctx, Request{Endpoint: "movie"})
		require.False(t, res.Failed())
		assert.Equal(t, payload, res.Data)
		assert.NoError(t, res.Err())
	})

	t.Run("error becomes failure", func(t *testing.T) {
		op := Safe(func(context.Context, Request) (any, error) {
			return nil, errors.New("connection refused")
		})

		res := op(ctx, Request{})
		require.True(t, res.Failed())
		assert.Equal(t, "connection refused", res.Failure.Message)
		assert.Nil(t, res.Data)
	})

	t.Run("panic becomes failure", func(t *testing.T) {
		op := Safe(func(context.Context, Request) (any, error) {
			var m map[string]int
			m["boom"] = 1
			return nil, nil
		})

		var res Result
		require.NotPanics(t, func() { res = op(ctx, Request{}) })
		require.True(t, res.Failed())
		assert.Contains(t, res.Failure.Message, "nil map")
	})

	t.Run("request is forwarded", func(t *testing.T) {
		var seen Request
		op := Safe(func(_ context.Context, req Request) (any, error) {
			seen = req
			return nil, nil
		})

		req := Request{Endpoint: "quote", ID: "1", Query: "q", Filter: "f=1"}
		op(ctx, req)
		assert.Equal(t, req, seen)
	})
}

func TestSafeAsync(t *testing.T) {
	ctx := context.Background()

	t.Run("success is awaited", func(t *testing.T) {
		op := SafeAsync(func(context.Context, Request) (any, error) {
			return "ok", nil
		})

		res := op(ctx, Request{}).Await(ctx)
		assert.False(t, res.Failed())
		assert.Equal(t, "ok", res.Data)
	})

	t.Run("panic in goroutine is contained", func(t *testing.T) {
		op := SafeAsync(func(context.Context, Request) (any, error) {
			panic("decoder exploded")
		})

		res := op(ctx, Request{}).Await(ctx)
		require.True(t, res.Failed())
		assert.Equal(t, "decoder exploded", res.Failure.Message)
	})

	t.Run("await honours context", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		op := SafeAsync(func(context.Context, Request) (any, error) {
			<-release
			return "late", nil
		})

		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		res := op(ctx, Request{}).Await(waitCtx)
		require.True(t, res.Failed())
		assert.Contains(t, res.Failure.Message, "deadline exceeded")
	})
}

func TestResolved(t *testing.T) {
	f := Resolved(Fail(ErrMissingEndpoint))

	select {
	case <-f.Done():
	default:
		t.Fatal("resolved future must be done")
	}
	assert.Equal(t, ErrMissingEndpoint.Error(), f.Await(context.Background()).Failure.Message)
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Run("failure is a one-key object", func(t *testing.T) {
		raw, err := json.Marshal(Fail(errors.New("timeout")))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, map[string]any{"error": "timeout"}, decoded)
	})

	t.Run("success is the bare payload", func(t *testing.T) {
		raw, err := json.Marshal(Success(map[string]any{"total": 1}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"total": 1}`, string(raw))
	})
}

func TestFail_NilError(t *testing.T) {
	res := Fail(nil)
	require.True(t, res.Failed())
	assert.NotEmpty(t, res.Failure.Message)
}
