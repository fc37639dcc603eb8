package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cash-position-api/internal/api/handler/router"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
)

// serve registra um único handler no roteador para que os parâmetros de rota sejam resolvidos
func serve(t *testing.T, method, pattern string, h http.Handler, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(router.Route{Path: pattern, Method: method, Handler: h}))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
