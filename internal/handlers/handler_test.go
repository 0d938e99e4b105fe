package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/rentwheels/rentwheels/internal/handlers"
	"github.com/rentwheels/rentwheels/internal/identity"
	"github.com/rentwheels/rentwheels/internal/router"
	"github.com/rentwheels/rentwheels/internal/store/memory"
)

// stubVerifier resolves bearer tokens through a fixed token→email table, so
// tests exercise the real guard without an issuer.
type stubVerifier struct {
	tokens map[string]string
}

func (s stubVerifier) Verify(_ context.Context, authorization string) (identity.Identity, error) {
	token := strings.TrimPrefix(authorization, "Bearer ")
	if token != authorization {
		if email, ok := s.tokens[token]; ok {
			return identity.Identity{Email: email}, nil
		}
	}
	return identity.Identity{}, identity.ErrUnauthorized
}

type testEnv struct {
	app      *fiber.App
	users    *memory.UserStore
	cars     *memory.CarStore
	bookings *memory.BookingStore
}

// newTestEnv builds the full route table over memory stores. tokens maps
// bearer tokens to the emails they verify as.
func newTestEnv(tokens map[string]string) *testEnv {
	env := &testEnv{
		users:    memory.NewUserStore(),
		cars:     memory.NewCarStore(),
		bookings: memory.NewBookingStore(),
	}

	env.app = fiber.New()
	router.Setup(env.app, stubVerifier{tokens: tokens},
		handlers.NewUserHandler(env.users),
		handlers.NewCarHandler(env.cars),
		handlers.NewBookingHandler(env.bookings))
	return env
}

// request performs a JSON request through the app. token == "" sends no
// Authorization header.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// message pulls the "message" field out of an envelope response.
func message(t *testing.T, resp *http.Response) string {
	t.Helper()
	var envelope struct {
		Message string `json:"message"`
	}
	decodeJSON(t, resp, &envelope)
	return envelope.Message
}
