// Package accounts persists the user directory as a single JSON array,
// rewritten in full on every save.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

type Repository interface {
	Load(ctx context.Context) ([]models.Account, error)
	Save(ctx context.Context, accounts []models.Account) error
}
