package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestRecoverPanics(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))

	h := RequestID(recoverPanics(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"internal_server_error"`)
	assert.Contains(t, buf.String(), "handler panicked")
	assert.Contains(t, buf.String(), "panic: boom")
}

func TestRecoverPanicsRethrowsAbort(t *testing.T) {
	h := recoverPanics(logger.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestHTTPError(t *testing.T) {
	assert.Equal(t, "bad_request", ErrBadRequest.Error())
	assert.Equal(t, "Bad Request", ErrBadRequest.Message())

	cause := assert.AnError
	wrapped := ErrBadRequest.Wrap(cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, cause.Error(), wrapped.Message())
	assert.Nil(t, ErrBadRequest.Err, "Wrap must not mutate the sentinel")
}
