package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/stockkeeper/internal/config"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/products"
	"github.com/stretchr/testify/require"
)

var (
	rootAcc = models.Account{FirstName: "Root", LastName: "Admin", Username: "root", Password: "admin12", IsAdmin: true}
	annAcc  = models.Account{FirstName: "Ann", LastName: "Lee", Username: "ann", Password: "abc1234"}
	widget  = models.Product{ID: "PD100001", Name: "Widget", Price: 9.99, Quantity: 5}
)

// stubTerminal makes password prompts read plain lines from the scripted input.
func stubTerminal(t *testing.T) {
	t.Helper()
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = orig })
}

// newTestApp returns an App over a fresh data dir that reads input line by line.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()

	var out bytes.Buffer
	return newApp(cfg, logging.Discard(), strings.NewReader(input), &out), &out
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func seedAccounts(t *testing.T, a *App, accs ...models.Account) {
	t.Helper()
	require.NoError(t, accounts.NewFileRepository(a.config.DataDir).Save(context.Background(), accs))
}

func seedProducts(t *testing.T, a *App, username string, items ...models.Product) {
	t.Helper()
	require.NoError(t, products.NewFileRepository(a.config.DataDir, username).Save(context.Background(), items))
}

func loadAccounts(t *testing.T, a *App) []models.Account {
	t.Helper()
	items, err := accounts.NewFileRepository(a.config.DataDir).Load(context.Background())
	require.NoError(t, err)
	return items
}

func loadProducts(t *testing.T, a *App, username string) []models.Product {
	t.Helper()
	items, err := products.NewFileRepository(a.config.DataDir, username).Load(context.Background())
	require.NoError(t, err)
	return items
}
