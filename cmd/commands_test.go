package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlbm-go/qlbm/components"
	"github.com/qlbm-go/qlbm/draw"
	"github.com/qlbm-go/qlbm/internal/testutil"
	"github.com/qlbm-go/qlbm/lattice"
	"github.com/qlbm-go/qlbm/store"
)

func TestRender_Component(t *testing.T) {
	// GIVEN the example lattice
	l := testutil.ExampleLattice(t)

	// WHEN its grid measurement is rendered with the text backend
	var buf bytes.Buffer
	err := render(l, drawRequest{Component: components.NameGridMeasurement, Backend: "text"}, &buf)

	// THEN the drawing matches the component's own text drawing
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "c/6: ══0══1══2══3══4══5══")
}

func TestRender_LatticeGeometry(t *testing.T) {
	var buf bytes.Buffer
	err := render(testutil.ExampleLattice(t), drawRequest{Backend: "text", Lattice: true}, &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1 | . . . . . # # .")
}

func TestRender_DefaultBackendIsRegistered(t *testing.T) {
	var buf bytes.Buffer
	err := render(testutil.ExampleLattice(t), drawRequest{Component: components.NameGridMeasurement, Backend: "mpl"}, &buf)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRender_UnknownBackend(t *testing.T) {
	err := render(testutil.ExampleLattice(t), drawRequest{Component: components.NameGridMeasurement, Backend: "latex"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, draw.ErrUnknownBackend)
}

func TestRender_UnknownComponent(t *testing.T) {
	err := render(testutil.ExampleLattice(t), drawRequest{Component: "collision", Backend: "text"}, &bytes.Buffer{})

	assert.ErrorContains(t, err, `unknown component "collision"`)
}

func TestRecordRender_ThenCatalogShowAndList(t *testing.T) {
	// GIVEN a render recorded in a fresh catalog
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	l := testutil.ExampleLattice(t)
	req := drawRequest{Component: components.NameGridMeasurement, Backend: "qasm"}
	content := []byte("OPENQASM 2.0;\n")

	id, err := recordRender(ctx, dbPath, defaultPreset, l, req, content)
	require.NoError(t, err)

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	// WHEN it is shown and listed
	var shown, listed bytes.Buffer
	require.NoError(t, writeRender(ctx, &shown, db, id, false))
	require.NoError(t, writeRenderList(ctx, &listed, db))

	// THEN the content comes back verbatim and the listing names it
	assert.Equal(t, string(content), shown.String())
	lines := strings.Split(strings.TrimSpace(listed.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "COMPONENT")
	assert.Contains(t, lines[1], id)
	assert.Contains(t, lines[1], "grid-measurement")
	assert.Contains(t, lines[1], "qasm")
}

func TestWriteRender_BinaryIsSummarized(t *testing.T) {
	ctx := context.Background()
	db, err := store.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer db.Close()
	png := []byte("\x89PNG\r\n\x1a\n\x00\xff")
	id, err := db.SaveRender(ctx, &store.Render{Component: "lattice", Backend: "mpl", Content: png})
	require.NoError(t, err)

	var summary, raw bytes.Buffer
	require.NoError(t, writeRender(ctx, &summary, db, id, false))
	require.NoError(t, writeRender(ctx, &raw, db, id, true))

	assert.Contains(t, summary.String(), "10 bytes of binary content")
	assert.Equal(t, png, raw.Bytes())
}

func TestWriteRender_Missing(t *testing.T) {
	db, err := store.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer db.Close()

	err = writeRender(context.Background(), &bytes.Buffer{}, db, "missing", false)

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWriteInspect_ExampleLattice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeInspect(&buf, testutil.ExampleLattice(t)))

	out := buf.String()
	assert.Contains(t, out, "8x8 grid, 4x4 velocities, 1 block(s), 16 qubits")
	assert.Contains(t, out, "6 grid, 4 velocity, 6 ancilla")
	assert.Contains(t, out, "q[6..8]")
	assert.Contains(t, out, "x:[5,6] y:[1,2] specular")
	assert.Contains(t, out, "wall x/low x:[4,4] y:[1,2]")
	assert.Contains(t, out, "wall y/high x:[5,6] y:[3,3]")
	assert.Contains(t, out, "1 (sizes 60)")
	assert.Contains(t, out, "measure=6")
	assert.Contains(t, out, "h=6")
}

func TestValidateFiles_ReportsEachFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte("lattice:\n  dim: {x: 8, y: 8}\n  velocities: {x: 4, y: 4}\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"lattice": {"dim": {"x": 8}, "velocities": {"x": 4}}, "geometry": [{"x": [6, 9], "boundary": "specular"}]}`), 0644))

	var buf bytes.Buffer
	failed := validateFiles(&buf, []string{good, bad})

	assert.Equal(t, 1, failed)
	assert.Contains(t, buf.String(), "ok   "+good)
	assert.Contains(t, buf.String(), "FAIL "+bad)
	assert.Contains(t, buf.String(), "geometry[0].x")
}

func TestWriteCanonicalConfig_FromHCL(t *testing.T) {
	// GIVEN an HCL config with a legacy boundary spelling
	path := filepath.Join(t.TempDir(), "lattice.hcl")
	hcl := `
lattice {
  dim        = { x = 8, y = 8 }
  velocities = { x = 4, y = 4 }
}

block {
  x        = [5, 6]
  y        = [1, 2]
  boundary = "bounce-back"
}
`
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0644))
	cfg, err := lattice.LoadConfig(path)
	require.NoError(t, err)

	// WHEN converted with normalization
	var buf bytes.Buffer
	require.NoError(t, writeCanonicalConfig(&buf, cfg, true))

	// THEN the YAML parses back strictly with the canonical boundary
	back, err := lattice.ParseConfig(buf.Bytes(), lattice.FormatYAML)
	require.NoError(t, err)
	require.Len(t, back.Geometry, 1)
	assert.Equal(t, "bounceback", back.Geometry[0].Boundary)
	assert.Equal(t, map[string]int{"x": 8, "y": 8}, back.Lattice.Dim)
}

func TestWriteCanonicalConfig_WithoutNormalize_RejectsLegacy(t *testing.T) {
	cfg := testutil.ExampleConfig()
	cfg.Geometry[0].Boundary = "bounce_back"

	err := writeCanonicalConfig(&bytes.Buffer{}, cfg, false)

	assert.ErrorIs(t, err, lattice.ErrUnknownBoundary)
}

func TestDrawCommand_WritesTextToOut(t *testing.T) {
	// GIVEN the draw command with the text backend and an output file
	out := filepath.Join(t.TempDir(), "measure.txt")
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	t.Cleanup(func() {
		configPath, presetName, componentName, backendName, outPath, drawLattice, storePath = "", "", components.NameGridMeasurement, "mpl", "", false, ""
	})
	rootCmd.SetArgs([]string{"draw", "--preset", defaultPreset, "--backend", "text", "--out", out, "--store", dbPath, "--log", "error"})

	// WHEN executed
	require.NoError(t, rootCmd.Execute())

	// THEN the file holds the drawing and the catalog records it
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	testutil.AssertGolden(t, filepath.Join("..", "components", "testdata", "grid_measurement.golden.txt"), string(data))

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	renders, err := db.ListRenders(context.Background())
	require.NoError(t, err)
	require.Len(t, renders, 1)
	assert.Equal(t, "text", renders[0].Backend)
}
