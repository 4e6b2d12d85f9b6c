package products

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/filex"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// Dir returns the directory holding every catalog file under dataDir.
func Dir(dataDir string) string {
	return filepath.Join(dataDir, "products")
}

// FilePath returns the catalog file of username under dataDir.
func FilePath(dataDir, username string) string {
	return filepath.Join(Dir(dataDir), "products."+username+".json")
}

type FileRepository struct {
	path string
}

func NewFileRepository(dataDir, username string) *FileRepository {
	return &FileRepository{path: FilePath(dataDir, username)}
}

func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []models.Product
	err := filex.ReadJSON(r.path, &items)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Product{}, nil
	}
	if errors.Is(err, filex.ErrMalformed) {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageCorruption, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	if err := checkRecords(items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrStorageCorruption, r.path, err)
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

func (r *FileRepository) Save(ctx context.Context, products []models.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if products == nil {
		products = []models.Product{}
	}
	if err := filex.WriteJSON(r.path, products); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}

// EnsureExists writes an empty catalog if the file is absent. An existing
// file is left alone, even when corrupted.
func (r *FileRepository) EnsureExists(ctx context.Context) error {
	ok, err := filex.Exists(r.path)
	if err != nil {
		return fmt.Errorf("failed to check products file: %w", err)
	}
	if ok {
		return nil
	}
	return r.Save(ctx, nil)
}

// RenameFile moves the catalog of from to to. A missing source is not an
// error; an existing target is.
func RenameFile(dataDir, from, to string) error {
	src, dst := FilePath(dataDir, from), FilePath(dataDir, to)

	ok, err := filex.Exists(src)
	if err != nil || !ok {
		return err
	}
	if err := CheckRenameTarget(dataDir, to); err != nil {
		return fmt.Errorf("failed to rename products file: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename products file: %w", err)
	}
	return nil
}

// CheckRenameTarget fails with common.ErrDuplicateUsername when a catalog
// file for username is already on disk, for example one left behind by a
// deleted account.
func CheckRenameTarget(dataDir, username string) error {
	exists, err := filex.Exists(FilePath(dataDir, username))
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: products of %q are still on disk", common.ErrDuplicateUsername, username)
	}
	return nil
}

func checkRecords(items []models.Product) error {
	ids := make(map[string]struct{}, len(items))
	names := make(map[string]struct{}, len(items))
	for _, p := range items {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("duplicate id %s", p.ID)
		}
		key := strings.ToLower(p.Name)
		if _, dup := names[key]; dup {
			return fmt.Errorf("duplicate name %q", p.Name)
		}
		ids[p.ID] = struct{}{}
		names[key] = struct{}{}
	}
	return nil
}
