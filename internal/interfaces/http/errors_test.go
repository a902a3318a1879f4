package http

import (
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/tallermunicipal/inventario-api/internal/domain"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: producto p1", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: cantidad", domain.ErrInvalidInput), fiber.StatusBadRequest, "INVALID_INPUT"},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{domain.ErrUsernameTaken, fiber.StatusConflict, "USERNAME_TAKEN"},
		{fmt.Errorf("lock: %w", domain.ErrConflict), fiber.StatusConflict, "CONFLICT"},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{&requestError{code: "VALIDATION", message: "x"}, fiber.StatusBadRequest, "VALIDATION"},
		{fiber.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("conexión rechazada"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code := statusFor(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestErrorHandler_ConflictoIndicaReintento(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error { return fmt.Errorf("stock: %w", domain.ErrConflict) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fmt.Errorf("pg: password de la base") })

	resp, err := app.Test(newRequest("/"), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))

	resp, err = app.Test(newRequest("/boom"), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Retry-After"))
}

func newRequest(path string) *stdhttp.Request {
	return httptest.NewRequest(stdhttp.MethodGet, path, nil)
}
