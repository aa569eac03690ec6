package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := performRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "alice",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.NotEmpty(t, result["token"])

	user := result["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app, _, _ := newTestApp(t)

	body := map[string]string{"username": "alice", "password": "password123"}

	resp := performRequest(t, app, "POST", "/api/auth/register", "", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = performRequest(t, app, "POST", "/api/auth/register", "", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already exists", decodeBody(t, resp)["error"])
}

func TestRegisterValidation(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := performRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "alice",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "Validation failed", result["error"])
	details := result["details"].(map[string]interface{})
	assert.Contains(t, details, "password")
}

func TestRegisterRejectsShortUsername(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := performRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "ab",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, _, _ := newTestApp(t)
	registerUser(t, app, "bob", "password123")

	resp := performRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "bob",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, true, result["success"])
	assert.NotEmpty(t, result["token"])
	assert.Equal(t, "bob", result["user"].(map[string]interface{})["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, _, _ := newTestApp(t)
	registerUser(t, app, "bob", "password123")

	resp := performRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "bob",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeBody(t, resp)["error"])
}

func TestLoginUnknownUser(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := performRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "ghost",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := performRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "bob",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
