package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/churchconnect/edge/middlewares"
	"github.com/churchconnect/edge/pkg/logger"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("passes through without panic", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("panic becomes 500 and is logged with stack", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := middlewares.Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, buf.String(), "panic recovered")
		require.Contains(t, buf.String(), `"panic":"boom"`)
		require.Contains(t, buf.String(), `"stack"`)
	})

	t.Run("stack can be disabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := middlewares.Recover(log, middlewares.WithRecoverDisablePrintStack())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotContains(t, buf.String(), `"stack"`)
	})

	t.Run("custom responder receives PanicError", func(t *testing.T) {
		t.Parallel()

		var got error
		responder := func(w http.ResponseWriter, _ *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusTeapot)
		}

		h := middlewares.Recover(logger.NewNope(), middlewares.WithRecoverResponder(responder))(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(42) }),
		)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.True(t, middlewares.IsPanicError(got))
		require.Equal(t, "panic: 42", got.Error())
	})

	t.Run("does not overwrite a started response", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			panic("late")
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("abort handler panics propagate", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		require.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
