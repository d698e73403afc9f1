package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/routes"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := config.Default()
	cfg.UploadDir = t.TempDir()
	cfg.PublicDir = t.TempDir()
	cfg.Company.Name = "CV Uji Alat"
	config.App = cfg
	return routes.New(cfg)
}

func request(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, b []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(b, v), string(b))
}

// login registers an admin and returns its bearer token.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := request(t, app, "POST", "/api/register", map[string]string{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "rahasia123",
	}, "")
	require.Equal(t, fiber.StatusCreated, status, string(body))

	status, body = request(t, app, "POST", "/api/login", map[string]string{
		"email":    "admin@example.com",
		"password": "rahasia123",
	}, "")
	require.Equal(t, fiber.StatusOK, status, string(body))
	var res struct {
		Token string `json:"token"`
	}
	decode(t, body, &res)
	require.NotEmpty(t, res.Token)
	return res.Token
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
