package accounts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/filex"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// FilePath returns the directory file under dataDir.
func FilePath(dataDir string) string {
	return filepath.Join(dataDir, "user.json")
}

type FileRepository struct {
	path string
}

func NewFileRepository(dataDir string) *FileRepository {
	return &FileRepository{path: FilePath(dataDir)}
}

// Load returns the accounts in file order. A missing file is an empty
// directory; undecodable content, blank or duplicate usernames and more
// than one admin are reported as common.ErrStorageCorruption.
func (r *FileRepository) Load(ctx context.Context) ([]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []models.Account
	err := filex.ReadJSON(r.path, &items)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Account{}, nil
	}
	if errors.Is(err, filex.ErrMalformed) {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageCorruption, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	if err := checkRecords(items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrStorageCorruption, r.path, err)
	}
	if items == nil {
		items = []models.Account{}
	}
	return items, nil
}

func (r *FileRepository) Save(ctx context.Context, accounts []models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	if err := filex.WriteJSON(r.path, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func checkRecords(items []models.Account) error {
	seen := make(map[string]struct{}, len(items))
	admins := 0
	for _, a := range items {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, dup := seen[a.Username]; dup {
			return fmt.Errorf("duplicate username %q", a.Username)
		}
		seen[a.Username] = struct{}{}
		if a.IsAdmin {
			admins++
		}
	}
	if admins > 1 {
		return fmt.Errorf("%d admin accounts", admins)
	}
	return nil
}
