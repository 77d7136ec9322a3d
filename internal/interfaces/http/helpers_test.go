package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storesage/internal/infrastructure/memory"
	"github.com/jhoicas/storesage/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/storesage/internal/interfaces/http"
	"github.com/jhoicas/storesage/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// buildTestApp construye la API completa (con el middleware de logging) sobre un almacén en memoria vacío.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	deps := apphttp.NewRouterDeps(
		memory.NewStore(),
		pdf.NewMarotoReportGenerator(),
		func() time.Time { return testNow },
		"storesage-test",
	)
	apphttp.Router(app, deps)
	return app
}

// doJSON ejecuta la petición y devuelve el código y el cuerpo.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

// createProduct da de alta un producto y devuelve el objeto creado.
func createProduct(t *testing.T, app *fiber.App, body map[string]any) map[string]any {
	t.Helper()
	status, raw := doJSON(t, app, http.MethodPost, "/api/products", body)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	return decode[map[string]any](t, raw)
}

func httptestGet(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}
