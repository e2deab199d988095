package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"sentiment-dashboard/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTeapot = errors.New("teapot")

type sampleRequest struct {
	Column string `json:"column" validate:"required"`
	Limit  int    `json:"limit" validate:"gte=0"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Column: "text"}))

	err := ValidateRequest(sampleRequest{Limit: -1})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "Column failed on 'required'")
	assert.Contains(t, fe.Message, "Limit failed on 'gte'")
}

func TestStatusFor(t *testing.T) {
	rules := []StatusRule{{Err: errTeapot, Status: fiber.StatusTeapot}}

	assert.Equal(t, fiber.StatusTeapot, StatusFor(fmt.Errorf("wrapped: %w", errTeapot), rules))
	assert.Equal(t, fiber.StatusNotFound, StatusFor(fiber.ErrNotFound, rules))
	assert.Equal(t, fiber.StatusInternalServerError, StatusFor(errors.New("other"), rules))
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger(), []StatusRule{{Err: errTeapot, Status: fiber.StatusTeapot}}))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("fine", 1))
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fmt.Errorf("brew: %w", errTeapot)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/teapot", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var body BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, fiber.StatusTeapot, body.Code)
	assert.Equal(t, "brew: teapot", body.Message)
}
