package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullFile = `{
	"revenue": {"labels": ["Jan","Feb","Mar","Apr","May","Jun"], "values": [12000,15000,18000,20000,22000,30000]},
	"costs":   {"labels": ["Jan","Feb","Mar","Apr","May","Jun"], "values": [8000,9000,11000,12000,13000,14000]},
	"kpis": {"total_revenue": 117000, "total_costs": 67000, "profit_margin": 42.7, "growth_rate": 18.333}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", fullFile)
	loose := writeFile(t, dir, "loose.json", `{"revenue": [1], "costs": [2], "kpis": "x"}`)
	bad := writeFile(t, dir, "bad.json", `{"revenue": {}}`)

	t.Run("arquivos válidos", func(t *testing.T) {
		out, err := execute(t, "validate", good, loose)

		require.NoError(t, err)
		assert.Contains(t, out, "OK   good.json revenue=117000.00 costs=67000.00 margin=42.70% growth=18.33% months=6")
		assert.Contains(t, out, "OK   loose.json (non-standard shape, stored as sent)")
	})

	t.Run("um arquivo inválido falha o comando", func(t *testing.T) {
		out, err := execute(t, "validate", good, bad, filepath.Join(dir, "missing.json"))

		require.Error(t, err)
		assert.Equal(t, "2 of 3 files failed validation", err.Error())
		assert.Contains(t, out, "OK   good.json")
		assert.Contains(t, out, "FAIL bad.json: failed to parse JSON file: invalid JSON structure - missing required fields: costs; kpis")
		assert.Contains(t, out, "FAIL missing.json")
	})

	t.Run("modo estrito", func(t *testing.T) {
		_, err := execute(t, "validate", "--strict", loose)
		assert.Error(t, err)

		_, err = execute(t, "validate", "--strict", good)
		assert.NoError(t, err)
	})

	t.Run("sem argumentos", func(t *testing.T) {
		_, err := execute(t, "validate")
		assert.Error(t, err)
	})
}

func TestValidate_KeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.json", "b.json", "c.json", "d.json", "e.json", "f.json"} {
		paths = append(paths, writeFile(t, dir, name, fullFile))
	}

	results, err := (&ValidateCmd{}).validateFiles(t.Context(), paths)

	require.NoError(t, err)
	for i, result := range results {
		assert.Equal(t, paths[i], result.path)
		assert.NoError(t, result.err)
	}
}

func TestPush(t *testing.T) {
	var received []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data/upload" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"No file uploaded"}`))
			return
		}
		defer file.Close()
		received, _ = io.ReadAll(file)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"upload_id":"abc"}`))
	}))
	defer server.Close()

	path := writeFile(t, t.TempDir(), "data.json", fullFile)

	t.Run("url pela flag", func(t *testing.T) {
		out, err := execute(t, "push", path, "--api-url", server.URL+"/")

		require.NoError(t, err)
		assert.Equal(t, fullFile, string(received))
		assert.Contains(t, out, "\"upload_id\": \"abc\"")
	})

	t.Run("url pela variável de ambiente", func(t *testing.T) {
		received = nil
		t.Setenv("METRICSCTL_API_URL", server.URL)

		_, err := execute(t, "push", path)

		require.NoError(t, err)
		assert.NotEmpty(t, received)
	})

	t.Run("servidor responde erro", func(t *testing.T) {
		_, err := execute(t, "push", path, "--api-url", server.URL+"/outro")
		assert.Error(t, err)
	})

	t.Run("arquivo inexistente", func(t *testing.T) {
		_, err := execute(t, "push", filepath.Join(t.TempDir(), "nada.json"), "--api-url", server.URL)
		assert.Error(t, err)
	})
}
