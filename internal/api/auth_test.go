package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/register", "", map[string]any{
		"username": "alice",
		"password": "pw1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User registered successfully", decodeBody(t, w)["message"])

	w = doJSON(t, engine, http.MethodPost, "/login", "", map[string]any{
		"username": "alice",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["access_token"])
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	engine, _ := setupTestServer(t)
	body := map[string]any{"username": "alice", "password": "pw1"}

	w := doJSON(t, engine, http.MethodPost, "/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/register", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username already taken", decodeBody(t, w)["message"])
}

func TestRegisterRejectsIncompleteBody(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/register", "", map[string]any{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, w)["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/register", "", map[string]any{
		"username": "alice",
		"password": "pw1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/login", "", map[string]any{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}

func TestLoginUnknownUser(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/login", "", map[string]any{
		"username": "nobody",
		"password": "pw1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}
