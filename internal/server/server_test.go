package server_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/identity-api/internal/auth"
	"github.com/sakif/identity-api/internal/config"
	"github.com/sakif/identity-api/internal/server"
)

// newTestServer builds a full Server (router, middleware, handlers, store)
// on an in-memory database. Requests go through httptest against the
// assembled handler — the only thing these tests skip is the TCP listener.
func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := config.Config{
		Port:      0, // never listens in tests
		DBPath:    ":memory:",
		JWTSecret: "test-secret-at-least-16-chars!!",
		TokenTTL:  time.Hour,
		LogLevel:  "error",
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	srv, err := server.New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })
	return srv
}

func do(srv *server.Server, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	srv := newTestServer(t)

	rec := do(srv, http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API Running", rec.Body.String())
}

// TestEndToEnd walks the whole credential/token lifecycle through the real
// router: register → login → protected lookup, plus the rejection paths.
func TestEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	// --- Register ---
	rec := do(srv, http.MethodPost, "/api/users",
		`{"name":"A","email":"a@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	require.NotEmpty(t, reg.Token)

	// --- Login ---
	rec = do(srv, http.MethodPost, "/api/auth",
		`{"email":"a@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// --- Wrong password ---
	rec = do(srv, http.MethodPost, "/api/auth",
		`{"email":"a@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid Credentials"}]}`, rec.Body.String())

	// --- Protected route with each token ---
	for _, token := range []string{reg.Token, login.Token} {
		rec = do(srv, http.MethodGet, "/api/auth", "", token)
		assert.Equal(t, http.StatusOK, rec.Code)

		var user struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "a@x.com", user.Email)
		assert.NotEmpty(t, user.ID)
	}

	// --- Protected route rejections ---
	rec = do(srv, http.MethodGet, "/api/auth", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, rec.Body.String())

	rec = do(srv, http.MethodGet, "/api/auth", "", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Token is not valid"}`, rec.Body.String())
}

func TestRegister_ValidationThroughRouter(t *testing.T) {
	srv := newTestServer(t)

	rec := do(srv, http.MethodPost, "/api/users", `{"email":"a@x.com"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []struct {
			Msg   string `json:"msg"`
			Param string `json:"param"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2) // name and password missing
}

func TestServer_RejectsBadSecret(t *testing.T) {
	cfg := config.Config{
		DBPath:    ":memory:",
		JWTSecret: "short",
		TokenTTL:  time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	_, err := server.New(cfg, logger)
	require.Error(t, err)
}
