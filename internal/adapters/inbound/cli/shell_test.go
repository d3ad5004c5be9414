package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/stockroom/internal/adapters/inbound/cli"
)

func runShell(t *testing.T, input string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(input))
	root.SetArgs(append(args, "shell"))
	require.NoError(t, root.Execute())
	return out.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestShell_AddSellAndSave(t *testing.T) {
	workspace(t)

	out := runShell(t, lines(
		"1", "Electronic", "E1", "Phone", "200", "5", "Acme", "2",
		"2", "E1", "3",
		"9",
		"0",
	))
	assert.Contains(t, out, "--- Inventory Menu ---")
	assert.Contains(t, out, "Product added successfully!")
	assert.Contains(t, out, "Product sold successfully!")
	assert.Contains(t, out, "Total Inventory Value: 400.00")
	assert.Contains(t, out, "Exiting... Inventory saved.")

	records := listJSON(t, "list")
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Quantity)
}

func TestShell_ErrorsKeepTheLoopRunning(t *testing.T) {
	workspace(t)
	seed(t)

	out := runShell(t, lines(
		"2", "E1", "50",
		"7", "nope",
		"1", "Furniture",
		"1", "Grocery", "G2", "Bread", "2", "3", "tomorrow",
		"42",
		"0",
	))
	assert.Contains(t, out, "Inventory Error: out of stock")
	assert.Contains(t, out, "Inventory Error: invalid product data")
	assert.Contains(t, out, "Invalid type. Try again.")
	assert.Contains(t, out, "Invalid choice. Try again.")
	assert.Contains(t, out, "Exiting... Inventory saved.")
}

func TestShell_ListAndSearch(t *testing.T) {
	workspace(t)
	seed(t)

	out := runShell(t, lines("4", "5", "shi", "6", "electronic", "0"))
	assert.Contains(t, out, "(Electronic) ID: E1, Name: Phone, Price: 200.00, Quantity In Stock: 5, Brand: Acme, Warranty Years: 2")
	assert.Contains(t, out, "(Clothing) ID: C1, Name: Shirt")
	assert.Contains(t, out, "(Grocery) ID: G1")
}

func TestShell_SweepsOnStartAndSavesOnEOF(t *testing.T) {
	workspace(t)
	seed(t)
	mustRun(t, "add", "grocery", "--id", "G-old", "--name", "Old bread", "--price", "2", "--qty", "1", "--expiry", "01/01/2000")

	out := runShell(t, lines("10"))
	assert.Contains(t, out, "No expired products.", "already swept on start")
	assert.Contains(t, out, "Exiting... Inventory saved.")

	records := listJSON(t, "list")
	assert.Len(t, records, 3)
}

func TestShell_CorruptFileStartsEmpty(t *testing.T) {
	workspace(t)
	writeCorrupt(t)

	out := runShell(t, lines("4", "0"))
	assert.Contains(t, out, "Exiting... Inventory saved.")
	assert.Empty(t, listJSON(t, "list"))
}
