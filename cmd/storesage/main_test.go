package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storesage/internal/infrastructure/memory"
	"github.com/jhoicas/storesage/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/storesage/internal/interfaces/http"
	"github.com/jhoicas/storesage/internal/sync/mirror"
)

const offlineURL = "http://127.0.0.1:1"

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	app := fiber.New()
	apphttp.Router(app, apphttp.NewRouterDeps(
		memory.NewStore(),
		pdf.NewMarotoReportGenerator(),
		func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) },
		"storesage-test",
	))
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv
}

// cli ejecuta el comando con un espejo en archivo compartido entre invocaciones.
type cli struct {
	t          *testing.T
	mirrorPath string
}

func newCLI(t *testing.T) *cli {
	return &cli{t: t, mirrorPath: filepath.Join(t.TempDir(), "mirror.json")}
}

func (c *cli) run(apiURL string, args ...string) (string, string, error) {
	c.t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{
		"--api-url", apiURL,
		"--timeout", "2s",
		"--mirror", "file",
		"--mirror-path", c.mirrorPath,
		"--log-level", "error",
	}, args...)
	err := run(context.Background(), full, &out, &errOut)
	return out.String(), errOut.String(), err
}

func decodeRecord(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m), s)
	return m
}

func decodeList(t *testing.T, s string) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &l), s)
	return l
}

func TestCLI_ProductosOnline(t *testing.T) {
	srv := newAPIServer(t)
	c := newCLI(t)

	out, _, err := c.run(srv.URL, "products", "add", "--name", "Leche", "--quantity", "5", "--shelf", "A1")
	require.NoError(t, err)
	created := decodeRecord(t, out)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Leche", created["name"])
	assert.EqualValues(t, 10, created["minQuantity"], "la API aplica el mínimo por defecto")

	out, _, err = c.run(srv.URL, "products", "update", id, "--quantity", "20")
	require.NoError(t, err)
	updated := decodeRecord(t, out)
	assert.EqualValues(t, 20, updated["quantity"])
	assert.Equal(t, "A1", updated["shelfNumber"], "los campos no indicados se conservan")

	out, _, err = c.run(srv.URL, "products", "list")
	require.NoError(t, err)
	require.Len(t, decodeList(t, out), 1)

	// la lectura online refresca el espejo
	records, err := mirror.LoadCollection(context.Background(), mirror.NewFileStore(c.mirrorPath), mirror.KeyProducts)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0]["id"])

	out, _, err = c.run(srv.URL, "products", "delete", id)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestCLI_OfflineYBootstrap(t *testing.T) {
	srv := newAPIServer(t)
	c := newCLI(t)

	out, errOut, err := c.run(offlineURL, "reminders", "add", "--product", "Arroz", "--note", "pedir más", "--priority", "high")
	require.NoError(t, err)
	assert.Contains(t, errOut, "sin conexión")
	local := decodeRecord(t, out)
	assert.NotEmpty(t, local["id"])
	assert.Equal(t, "Arroz", local["productName"])

	out, errOut, err = c.run(offlineURL, "reminders", "list")
	require.NoError(t, err)
	assert.Contains(t, errOut, "sin conexión")
	require.Len(t, decodeList(t, out), 1)

	// sin conexión no hay fallback para get
	_, _, err = c.run(offlineURL, "reminders", "get", local["id"].(string))
	require.Error(t, err)

	_, _, err = c.run(srv.URL, "bootstrap")
	require.NoError(t, err)

	out, _, err = c.run(srv.URL, "reminders", "get", local["id"].(string))
	require.NoError(t, err)
	stored := decodeRecord(t, out)
	assert.Equal(t, "pedir más", stored["note"])
	assert.Equal(t, "high", stored["priority"])
}

func TestCLI_PrestamosDevolucion(t *testing.T) {
	srv := newAPIServer(t)
	c := newCLI(t)

	out, _, err := c.run(srv.URL, "borrowed", "add", "--product", "Taladro", "--borrower", "Ana", "--quantity", "1")
	require.NoError(t, err)
	item := decodeRecord(t, out)
	id := item["id"].(string)

	out, _, err = c.run(srv.URL, "borrowed", "return", id)
	require.NoError(t, err)
	returned := decodeRecord(t, out)
	assert.EqualValues(t, 1, returned["returned"])
	assert.NotEmpty(t, returned["returnDate"])
}

func TestCLI_MirrorClear(t *testing.T) {
	c := newCLI(t)
	store := mirror.NewFileStore(c.mirrorPath)
	require.NoError(t, mirror.SaveCollection(context.Background(), store, mirror.KeyProducts, []mirror.Record{{"id": "p1"}}))

	out, _, err := c.run(offlineURL, "mirror", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "borrado")

	records, err := mirror.LoadCollection(context.Background(), store, mirror.KeyProducts)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCLI_ErroresDeUso(t *testing.T) {
	c := newCLI(t)
	cases := [][]string{
		{},
		{"unknown"},
		{"products"},
		{"products", "add", "--quantity", "3"},
		{"borrowed", "delete", "x"},
		{"reminders", "update", "x"},
		{"products", "get"},
		{"mirror", "reset"},
	}
	for _, args := range cases {
		_, _, err := c.run(offlineURL, append([]string{"--no-bootstrap"}, args...)...)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
}

func TestCLI_EliminadoNoReaparece(t *testing.T) {
	srv := newAPIServer(t)
	c := newCLI(t)

	out, _, err := c.run(srv.URL, "products", "add", "--name", "Leche", "--quantity", "5", "--shelf", "A1")
	require.NoError(t, err)
	productID := decodeRecord(t, out)["id"].(string)

	out, _, err = c.run(srv.URL, "reminders", "add", "--product", "Arroz", "--note", "pedir más")
	require.NoError(t, err)
	reminderID := decodeRecord(t, out)["id"].(string)

	for _, kind := range []string{"products", "reminders"} {
		out, _, err = c.run(srv.URL, kind, "list")
		require.NoError(t, err)
		require.Len(t, decodeList(t, out), 1)
	}

	_, _, err = c.run(srv.URL, "products", "delete", productID)
	require.NoError(t, err)
	_, _, err = c.run(srv.URL, "reminders", "delete", reminderID)
	require.NoError(t, err)

	// cada invocación vuelve a importar el espejo al arrancar
	for _, kind := range []string{"products", "reminders"} {
		out, _, err = c.run(srv.URL, kind, "list")
		require.NoError(t, err)
		assert.Empty(t, decodeList(t, out), "%s eliminado volvió a aparecer", kind)
	}

	store := mirror.NewFileStore(c.mirrorPath)
	for _, key := range []string{mirror.KeyProducts, mirror.KeyReminders} {
		records, err := mirror.LoadCollection(context.Background(), store, key)
		require.NoError(t, err)
		assert.Empty(t, records, key)
	}
}

func TestCLI_AltaOnlineActualizaEspejo(t *testing.T) {
	srv := newAPIServer(t)
	c := newCLI(t)

	out, _, err := c.run(srv.URL, "borrowed", "add", "--product", "Taladro", "--borrower", "Ana", "--quantity", "1")
	require.NoError(t, err)
	id := decodeRecord(t, out)["id"].(string)

	records, err := mirror.LoadCollection(context.Background(), mirror.NewFileStore(c.mirrorPath), mirror.KeyBorrowed)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0]["id"])
}
