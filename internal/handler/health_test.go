package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthTestApp() *fiber.App {
	app := fiber.New()
	h := NewHealthHandler(nil, nil, "1.2.3", "2024.1")
	h.RegisterRoutes(app)
	return app
}

func TestHealthHandler_Health(t *testing.T) {
	app := setupHealthTestApp()

	resp, raw := doRequest(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(raw, &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "1.2.3", status.Version)
}

func TestHealthHandler_Liveness(t *testing.T) {
	app := setupHealthTestApp()

	resp, _ := doRequest(t, app, http.MethodGet, "/livez", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthHandler_Readiness(t *testing.T) {
	app := setupHealthTestApp()

	resp, _ := doRequest(t, app, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthHandler_Version(t *testing.T) {
	app := setupHealthTestApp()

	resp, raw := doRequest(t, app, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, "2024.1", body["rulesVersion"])
}
