package cli

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runUserMenu drives the user menu of ann over a catalog holding Widget.
func runUserMenu(t *testing.T, input string) (*App, string) {
	t.Helper()
	a, out := newTestApp(t, input)
	seedProducts(t, a, "ann", widget)

	ctx := context.Background()
	cat, err := a.openCatalog(ctx, "ann")
	require.NoError(t, err)
	require.NoError(t, a.UserMenu(ctx, cat))
	return a, out.String()
}

func TestUserMenu_AddProduct(t *testing.T) {
	a, out := runUserMenu(t, lines(
		"1", "Gadget", "2.5", "10",
		"1", "widget", "1", "1", // duplicate name, any case
		"1", "Gizmo", "abc", "1",
		"1", "Huge", "1", "201",
		"7", "yes",
	))

	assert.Contains(t, out, "Product Gadget added successfully with ID: PD100002")
	assert.Contains(t, out, "Error: duplicate product name")
	assert.Contains(t, out, "Invalid price or quantity.")
	assert.Contains(t, out, "Error: capacity exceeded")

	items := loadProducts(t, a, "ann")
	require.Len(t, items, 2)
	assert.Equal(t, "Gadget", items[1].Name)
}

func TestUserMenu_SellAndRestock(t *testing.T) {
	a, out := runUserMenu(t, lines(
		"2", "Widget", "2", "-", "10",
		"2", "Widget", "2", "-", "3",
		"2", "PD100001", "2", "+", "199",
		"2", "widget", "2", "+", "8",
		"2", "Widget", "2", "*", "1",
		"2", "Widget", "2", "+", "many",
		"7", "yes",
	))

	assert.Contains(t, out, "Not enough stock to sell!")
	assert.Contains(t, out, "Sold 3 of Widget. Updated stock: 2")
	assert.Contains(t, out, "Error: Total quantity cannot exceed 200.")
	assert.Contains(t, out, "Restocked 8 of Widget. Updated stock: 10")
	assert.Contains(t, out, "Invalid action.")
	assert.Contains(t, out, "Invalid quantity entered.")

	assert.Equal(t, 10, loadProducts(t, a, "ann")[0].Quantity)
}

func TestUserMenu_UpdatePrice(t *testing.T) {
	a, out := runUserMenu(t, lines(
		"2", "widget", "1", "12.5",
		"2", "Widget", "1", "-1",
		"2", "Widget", "3",
		"7", "yes",
	))

	assert.Contains(t, out, "Product price updated to 12.5.")
	assert.Contains(t, out, "Invalid price entered.")
	assert.Contains(t, out, "Invalid option.")
	assert.Equal(t, 12.5, loadProducts(t, a, "ann")[0].Price)
}

func TestUserMenu_CheckStock(t *testing.T) {
	_, out := runUserMenu(t, lines(
		"3", "PD100001",
		"3", "Gadget",
		"7", "yes",
	))

	assert.Contains(t, out, "Current stock for Widget: 5")
	assert.Contains(t, out, "Product not found.")
}

func TestUserMenu_DeleteProduct(t *testing.T) {
	a, out := runUserMenu(t, lines(
		"4", "Widget", "no",
		"5",
		"4", "Widget", "yes",
		"5",
		"7", "yes",
	))

	assert.Contains(t, out, "Product deletion canceled.")
	assert.Contains(t, out, "Widget (ID: PD100001) - Price: 9.99, Stock: 5")
	assert.Contains(t, out, "Product Widget deleted successfully.")
	assert.Contains(t, out, "Inventory is empty.")
	assert.Empty(t, loadProducts(t, a, "ann"))
}

func TestUserMenu_Search(t *testing.T) {
	_, out := runUserMenu(t, lines(
		"6", "wi",
		"6", "zzz",
		"6", "DGE",
		"7", "yes",
	))

	assert.Contains(t, out, "Please enter at least 3 letters to search.")
	assert.Contains(t, out, "No products found matching your search.")
	assert.Contains(t, out, "Search Results:\nWidget (ID: PD100001) - Price: 9.99, Stock: 5")
}

func TestUserMenu_LogoutNeedsConfirmation(t *testing.T) {
	_, out := runUserMenu(t, lines("7", "no", "8", "7", "yes"))

	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Logging out...")
}

func TestUserMenu_EOF(t *testing.T) {
	a, _ := newTestApp(t, lines("5"))
	ctx := context.Background()
	cat, err := a.openCatalog(ctx, "ann")
	require.NoError(t, err)

	assert.ErrorIs(t, a.UserMenu(ctx, cat), io.EOF)
}

func TestUserMenu_AddDuplicateReportedBeforeBadPrice(t *testing.T) {
	_, out := runUserMenu(t, lines(
		"1", "widget", "abc", "1",
		"1", "PD100002", "1", "1",
		"7", "yes",
	))

	assert.Contains(t, out, "Error: duplicate product name")
	assert.NotContains(t, out, "Invalid price or quantity.")
	assert.Contains(t, out, "looks like a product id")
}

func TestUserMenu_MenuStopsOnCanceledContext(t *testing.T) {
	a, out := newTestApp(t, lines("5", "7", "yes"))
	ctx, cancel := context.WithCancel(context.Background())
	cat, err := a.openCatalog(ctx, "ann")
	require.NoError(t, err)
	cancel()

	assert.ErrorIs(t, a.UserMenu(ctx, cat), context.Canceled)
	assert.Empty(t, out.String())
}
