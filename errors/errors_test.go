package errors

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-platform/apperror"
)

func respond(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Respond(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRespondMapsKindsToStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperror.NotFound("missing"), fiber.StatusNotFound},
		{apperror.Validation("bad input", nil), fiber.StatusBadRequest},
		{apperror.Conflict("duplicate", nil), fiber.StatusBadRequest},
		{apperror.Authentication("who are you"), fiber.StatusUnauthorized},
		{apperror.Authorization("not yours"), fiber.StatusForbidden},
		{apperror.Internal("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, body := respond(t, tc.err)
		assert.Equal(t, tc.status, status, "error %v", tc.err)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, tc.err.Error(), body["message"])
	}
}

func TestRespondHidesUntypedErrors(t *testing.T) {
	status, body := respond(t, stderrors.New("pq: connection refused"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal error", body["message"])
	assert.NotContains(t, body["message"], "connection refused")
}

func TestRespondIncludesDetails(t *testing.T) {
	status, body := respond(t, apperror.Validation("Not enough seats available",
		map[string]interface{}{"available": 3}))

	assert.Equal(t, fiber.StatusBadRequest, status)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["available"])
}
