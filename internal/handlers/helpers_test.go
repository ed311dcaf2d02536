package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/middlewares"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request with chi path params and, when authID is not
// uuid.Nil, an authenticated user id.
func newRequest(method, target string, body any, authID uuid.UUID, params map[string]string) *http.Request {
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		data, _ := json.Marshal(v)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if authID != uuid.Nil {
		ctx = middlewares.WithUserID(ctx, authID)
	}
	return req.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func strPtr(s string) *string { return &s }
