package services

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// UserCatalog is one user's share of the admin summary.
type UserCatalog struct {
	Username string
	Products []models.Product
}

// CatalogOpener opens the catalog store of a user.
type CatalogOpener func(ctx context.Context, username string) (CatalogService, error)

// Summarize loads every user's catalog in directory order and returns the
// non-empty ones.
func Summarize(ctx context.Context, dir DirectoryService, open CatalogOpener) ([]UserCatalog, error) {
	accs, err := dir.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var out []UserCatalog
	for _, a := range accs {
		cat, err := open(ctx, a.Username)
		if err != nil {
			return nil, err
		}
		if items := cat.List(); len(items) > 0 {
			out = append(out, UserCatalog{Username: a.Username, Products: items})
		}
	}
	return out, nil
}
