package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/products"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

var defaultLimits = CatalogLimits{MaxProducts: 20, MaxQuantity: 200}

func newCatalog(t *testing.T, dir string) CatalogService {
	t.Helper()
	c, err := NewCatalogService(context.Background(), products.NewFileRepository(dir, "alice"), defaultLimits, logging.Discard())
	require.NoError(t, err)
	return c
}

func newDirectory(dir string) DirectoryService {
	return NewDirectoryService(accounts.NewFileRepository(dir), 4, logging.Discard())
}

// fakeProductsRepo keeps the catalog in memory and can be told to fail saves.
type fakeProductsRepo struct {
	items   []models.Product
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeProductsRepo) Load(ctx context.Context) ([]models.Product, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]models.Product{}, f.items...), nil
}

func (f *fakeProductsRepo) Save(ctx context.Context, items []models.Product) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.items = append([]models.Product{}, items...)
	return nil
}

func (f *fakeProductsRepo) EnsureExists(ctx context.Context) error { return nil }
func (f *fakeProductsRepo) Path() string                           { return "memory" }

// fakeAccountsRepo is the directory counterpart of fakeProductsRepo.
type fakeAccountsRepo struct {
	items   []models.Account
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeAccountsRepo) Load(ctx context.Context) ([]models.Account, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]models.Account{}, f.items...), nil
}

func (f *fakeAccountsRepo) Save(ctx context.Context, items []models.Account) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.items = append([]models.Account{}, items...)
	return nil
}
