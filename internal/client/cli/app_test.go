package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiljevs/itemvault/internal/client/api"
	"github.com/avasiljevs/itemvault/internal/client/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// newTestApp wires an App against a stub server, with stdin fed from input
// and the state dir inside a temp working directory.
func newTestApp(t *testing.T, handler http.HandlerFunc, input string) (*App, *bytes.Buffer) {
	t.Helper()
	chdir(t, t.TempDir())

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.Config{ServerAddr: ts.URL, StateDir: ".itemvault"}
	var out bytes.Buffer
	app := &App{
		config: cfg,
		api:    api.New(cfg.ServerAddr),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}
	return app, &out
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {}, "")

	err := app.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {}, "")

	require.NoError(t, app.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "usage:")
}

func TestLoginThenWhoami(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("longenough1"), nil }

	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login/access-token":
			email, password, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "a@x.com", email)
			assert.Equal(t, "longenough1", password)
			json.NewEncoder(w).Encode(api.Token{ID: "t1", Value: "tok-value", UserID: "u1"})
		case "/login/test-token":
			require.Equal(t, "Bearer tok-value", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(api.User{ID: "u1", FullName: "Alice", Email: "a@x.com"})
		default:
			t.Fatalf("unexpected request: %s", r.URL.Path)
		}
	}, "a@x.com\n")

	require.NoError(t, app.Run(context.Background(), []string{"login"}))
	assert.Contains(t, out.String(), "Logged in.")

	require.NoError(t, app.Run(context.Background(), []string{"whoami"}))
	assert.Contains(t, out.String(), "Alice <a@x.com>")
}

func TestWhoami_WithoutLogin(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {}, "")

	err := app.Run(context.Background(), []string{"whoami"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestItemsCommands(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/items":
			json.NewEncoder(w).Encode(api.Item{ID: "i1", Title: "Foo", OwnerID: "u1"})
		case r.Method == http.MethodGet && r.URL.Path == "/items":
			json.NewEncoder(w).Encode([]api.Item{{ID: "i1", Title: "Foo", OwnerID: "u1"}})
		case r.Method == http.MethodDelete && r.URL.Path == "/items/i1":
			json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}, "Foo\n\n")

	require.NoError(t, app.saveToken("tok-value"))

	require.NoError(t, app.Run(context.Background(), []string{"items", "add"}))
	assert.Contains(t, out.String(), "Created item i1")

	require.NoError(t, app.Run(context.Background(), []string{"items", "list"}))
	assert.Contains(t, out.String(), "Foo")

	require.NoError(t, app.Run(context.Background(), []string{"items", "rm", "i1"}))
	assert.Contains(t, out.String(), "Deleted.")

	err := app.Run(context.Background(), []string{"items", "rm"})
	require.Error(t, err)
}

func TestTokenCacheRoundTrip(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {}, "")

	require.NoError(t, app.saveToken("cached-token"))

	got, err := app.loadToken()
	require.NoError(t, err)
	assert.Equal(t, "cached-token", got)
}
