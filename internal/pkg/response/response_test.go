package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, handler fiber.Handler) (int, Response) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body Response
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessEnvelope(t *testing.T) {
	status, body := roundTrip(t, func(c *fiber.Ctx) error {
		return Success(c, "ok", fiber.Map{"n": 1})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Message)
	assert.Empty(t, body.Error)
}

func TestErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name    string
		handler fiber.Handler
		status  int
	}{
		{"bad request", func(c *fiber.Ctx) error { return BadRequest(c, "nope") }, fiber.StatusBadRequest},
		{"unauthorized", func(c *fiber.Ctx) error { return Unauthorized(c, "nope") }, fiber.StatusUnauthorized},
		{"forbidden", func(c *fiber.Ctx) error { return Forbidden(c, "nope") }, fiber.StatusForbidden},
		{"not found", func(c *fiber.Ctx) error { return NotFound(c, "nope") }, fiber.StatusNotFound},
		{"conflict", func(c *fiber.Ctx) error { return Conflict(c, "nope") }, fiber.StatusConflict},
		{"too many requests", func(c *fiber.Ctx) error { return TooManyRequests(c, "nope") }, fiber.StatusTooManyRequests},
		{"internal", func(c *fiber.Ctx) error { return InternalServerError(c, "nope") }, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := roundTrip(t, tt.handler)
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			assert.Equal(t, "nope", body.Error)
			assert.Empty(t, body.Message)
		})
	}
}
