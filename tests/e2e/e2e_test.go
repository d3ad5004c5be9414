package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/stockroom/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "stockroom-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "stockroom")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/stockroom")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

// shopDir copies the fixture inventory into a fresh working directory.
func shopDir(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/inventory/shop.json")
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.json"), data, 0644))
	return dir
}

func run(t *testing.T, dir, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "STOCKROOM_LOG_LEVEL=error")
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func records(t *testing.T, dir string) []domain.Record {
	t.Helper()
	out, code := run(t, dir, "", "list", "--json")
	require.Equal(t, 0, code, out)
	var recs []domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	return recs
}

// --- Load Tests ---

func TestE2E_LoadSkipsUnknownTypes(t *testing.T) {
	dir := shopDir(t)
	recs := records(t, dir)
	require.Len(t, recs, 4)
	assert.Equal(t, "E100", recs[0].ProductID)
	assert.Equal(t, "C300", recs[3].ProductID)
}

func TestE2E_Value(t *testing.T) {
	dir := shopDir(t)
	out, code := run(t, dir, "", "value", "--plain")
	assert.Equal(t, 0, code)
	// 149.99*8 + 2.5*40 + 4*6 + 89*3
	assert.Equal(t, "1590.92\n", out)
}

// --- Stock Tests ---

func TestE2E_SellAndRestock(t *testing.T) {
	dir := shopDir(t)

	out, code := run(t, dir, "", "sell", "E100", "3")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Product E100 sold successfully! Stock: 5")

	out, code = run(t, dir, "", "sell", "E100", "30")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Inventory Error: out of stock")

	out, code = run(t, dir, "", "restock", "C300", "7")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Stock: 10")
}

func TestE2E_UnknownIDReportsInventoryError(t *testing.T) {
	dir := shopDir(t)
	out, code := run(t, dir, "", "remove", "X999")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Inventory Error: invalid product data")
}

// --- Sweep Tests ---

func TestE2E_SweepRemovesExpired(t *testing.T) {
	dir := shopDir(t)

	out, code := run(t, dir, "", "sweep")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "G201")

	recs := records(t, dir)
	assert.Len(t, recs, 3)
}

// --- Shell Tests ---

func TestE2E_ShellRoundTrip(t *testing.T) {
	dir := shopDir(t)

	input := strings.Join([]string{
		"1", "Clothing", "C301", "Wool Scarf", "19.50", "12", "One Size", "wool",
		"6", "clothing",
		"0",
	}, "\n") + "\n"
	out, code := run(t, dir, input, "shell")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Product added successfully!")
	assert.Contains(t, out, "(Clothing) ID: C301, Name: Wool Scarf, Price: 19.50")
	assert.Contains(t, out, "Exiting... Inventory saved.")

	recs := records(t, dir)
	require.Len(t, recs, 4, "expired sourdough swept on start, scarf added")
	assert.Equal(t, "C301", recs[3].ProductID)
}

// --- Config Tests ---

func TestE2E_InitThenCustomFile(t *testing.T) {
	dir := t.TempDir()

	out, code := run(t, dir, "", "init", "--inventory-file", "data/stock.json")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Created .stockroom.yaml")

	_, code = run(t, dir, "", "add", "electronic", "--id", "E1", "--name", "Phone", "--price", "200", "--qty", "1")
	assert.Equal(t, 0, code)

	_, err := os.Stat(filepath.Join(dir, "data", "stock.json"))
	assert.NoError(t, err)
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, t.TempDir(), "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "stockroom")
}
