package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"learnhub/config"
	"learnhub/database"
	"learnhub/routes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var testDBCounter int64

// newTestApp builds a fully wired app against a fresh in-memory database,
// seeded with the admin account and the three sample courses.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		DBPath:        fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1)),
		JWTSecret:     "testsecret",
		ServerPort:    "8080",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := database.Seed(db, cfg); err != nil {
		t.Fatalf("seed test database: %v", err)
	}

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)
	return app, db, cfg
}

func performRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return result
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return result
}

// registerUser creates an account through the API and returns its token and id.
func registerUser(t *testing.T, app *fiber.App, username, password string) (string, uint) {
	t.Helper()

	resp := performRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register %q: got status %d", username, resp.StatusCode)
	}

	result := decodeBody(t, resp)
	token := result["token"].(string)
	id := uint(result["user"].(map[string]interface{})["id"].(float64))
	return token, id
}

func loginUser(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	resp := performRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login %q: got status %d", username, resp.StatusCode)
	}

	return decodeBody(t, resp)["token"].(string)
}
