package products

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

type Repository interface {
	Load(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, products []models.Product) error
	EnsureExists(ctx context.Context) error
	Path() string
}
