package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/accounts"
)

// DirectoryService manages the shared set of user accounts.
//
// Accounts are addressed by their 0-based position in ListAccounts. Each
// call reloads the directory from its repository and, if it mutates,
// rewrites it completely, so the file stays the only source of truth.
type DirectoryService interface {
	SignUp(ctx context.Context, first, last, username, password string, adminRequested bool) (models.Account, error)
	Login(ctx context.Context, username, password string) (models.Account, error)
	AdminLogin(ctx context.Context, username, password string) (models.Account, error)
	Account(ctx context.Context, index int) (models.Account, error)
	DeleteAccount(ctx context.Context, index int) (models.Account, error)
	UpdateAccount(ctx context.Context, index int, field, value string) (models.Account, error)
	PromoteToAdmin(ctx context.Context, index int) (bool, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	HasCapacity(ctx context.Context) (bool, error)
	AdminExists(ctx context.Context) (bool, error)
}

type directoryService struct {
	repo        accounts.Repository
	maxAccounts int
	log         logging.Logger
}

func NewDirectoryService(repo accounts.Repository, maxAccounts int, log logging.Logger) DirectoryService {
	return &directoryService{repo: repo, maxAccounts: maxAccounts, log: log}
}

// load treats a corrupted directory as empty after logging it.
func (d *directoryService) load(ctx context.Context) ([]models.Account, error) {
	items, err := d.repo.Load(ctx)
	if errors.Is(err, common.ErrStorageCorruption) {
		d.log.Warn(ctx, "error loading user data, treating directory as empty", "error", err)
		return []models.Account{}, nil
	}
	return items, err
}

// SignUp registers a new account. adminRequested is silently downgraded
// when an admin already exists; the returned account has the effective flag.
func (d *directoryService) SignUp(ctx context.Context, first, last, username, password string, adminRequested bool) (models.Account, error) {
	items, err := d.load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if len(items) >= d.maxAccounts {
		return models.Account{}, fmt.Errorf("%w: already %d users have access", common.ErrCapacity, d.maxAccounts)
	}
	if err := ValidateUsername(username); err != nil {
		return models.Account{}, err
	}
	if indexByUsername(items, username) >= 0 {
		return models.Account{}, fmt.Errorf("%w: %s", common.ErrDuplicateUsername, username)
	}
	if err := ValidatePassword(password); err != nil {
		return models.Account{}, err
	}

	acc := models.Account{
		FirstName: first,
		LastName:  last,
		Username:  username,
		Password:  password,
		IsAdmin:   adminRequested && adminIndex(items) < 0,
	}
	if err := d.repo.Save(ctx, append(items, acc)); err != nil {
		return models.Account{}, err
	}

	d.log.Info(ctx, "user signed up", "username", username, "admin", acc.IsAdmin)
	return acc, nil
}

// Login returns the account whose credentials match exactly.
// An empty directory yields common.ErrEmptyDirectory rather than
// common.ErrAuthentication.
func (d *directoryService) Login(ctx context.Context, username, password string) (models.Account, error) {
	items, err := d.load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if len(items) == 0 {
		return models.Account{}, common.ErrEmptyDirectory
	}
	for _, a := range items {
		if a.Username == username && a.Password == password {
			return a, nil
		}
	}
	return models.Account{}, common.ErrAuthentication
}

func (d *directoryService) AdminLogin(ctx context.Context, username, password string) (models.Account, error) {
	acc, err := d.Login(ctx, username, password)
	if err != nil {
		return models.Account{}, err
	}
	if !acc.IsAdmin {
		return models.Account{}, fmt.Errorf("%w: invalid admin username or password", common.ErrAuthentication)
	}
	return acc, nil
}

func (d *directoryService) Account(ctx context.Context, index int) (models.Account, error) {
	items, err := d.load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if err := checkIndex(items, index); err != nil {
		return models.Account{}, err
	}
	return items[index], nil
}

// DeleteAccount removes the account at index and returns it. The user's
// catalog file is kept.
func (d *directoryService) DeleteAccount(ctx context.Context, index int) (models.Account, error) {
	items, err := d.load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if err := checkIndex(items, index); err != nil {
		return models.Account{}, err
	}

	deleted := items[index]
	if err := d.repo.Save(ctx, slices.Delete(items, index, index+1)); err != nil {
		return models.Account{}, err
	}
	d.log.Info(ctx, "user deleted", "username", deleted.Username)
	return deleted, nil
}

// UpdateAccount sets one of models.EditableFields and returns the account
// as it was before the change, so callers can follow a username change.
func (d *directoryService) UpdateAccount(ctx context.Context, index int, field, value string) (models.Account, error) {
	items, err := d.load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if err := checkIndex(items, index); err != nil {
		return models.Account{}, err
	}

	switch field {
	case models.FieldPassword:
		if err := ValidatePassword(value); err != nil {
			return models.Account{}, err
		}
	case models.FieldUsername:
		if err := ValidateUsername(value); err != nil {
			return models.Account{}, err
		}
		if i := indexByUsername(items, value); i >= 0 && i != index {
			return models.Account{}, fmt.Errorf("%w: %s", common.ErrDuplicateUsername, value)
		}
	}

	prev := items[index]
	if !items[index].Set(field, value) {
		return models.Account{}, fmt.Errorf("%w: invalid attribute %q", common.ErrValidation, field)
	}
	if err := d.repo.Save(ctx, items); err != nil {
		return models.Account{}, err
	}
	d.log.Info(ctx, "user updated", "username", prev.Username, "field", field)
	return prev, nil
}

// PromoteToAdmin makes the account at index the only admin. It reports
// false, without writing anything, when that account already is the admin.
func (d *directoryService) PromoteToAdmin(ctx context.Context, index int) (bool, error) {
	items, err := d.load(ctx)
	if err != nil {
		return false, err
	}
	if err := checkIndex(items, index); err != nil {
		return false, err
	}
	if items[index].IsAdmin {
		return false, nil
	}

	if cur := adminIndex(items); cur >= 0 {
		items[cur].IsAdmin = false
	}
	items[index].IsAdmin = true
	if err := d.repo.Save(ctx, items); err != nil {
		return false, err
	}
	d.log.Info(ctx, "admin replaced", "username", items[index].Username)
	return true, nil
}

func (d *directoryService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return d.load(ctx)
}

// HasCapacity reports whether another account can sign up.
func (d *directoryService) HasCapacity(ctx context.Context) (bool, error) {
	items, err := d.load(ctx)
	if err != nil {
		return false, err
	}
	return len(items) < d.maxAccounts, nil
}

func (d *directoryService) AdminExists(ctx context.Context) (bool, error) {
	items, err := d.load(ctx)
	if err != nil {
		return false, err
	}
	return adminIndex(items) >= 0, nil
}

func checkIndex(items []models.Account, index int) error {
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: no user number %d", common.ErrIndex, index+1)
	}
	return nil
}

func indexByUsername(items []models.Account, username string) int {
	return slices.IndexFunc(items, func(a models.Account) bool { return a.Username == username })
}

func adminIndex(items []models.Account) int {
	return slices.IndexFunc(items, func(a models.Account) bool { return a.IsAdmin })
}
