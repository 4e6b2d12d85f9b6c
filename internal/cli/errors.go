package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
)

var domainErrors = []error{
	common.ErrValidation,
	common.ErrCanceled,
	common.ErrDuplicateName,
	common.ErrDuplicateUsername,
	common.ErrCapacity,
	common.ErrInsufficientStock,
	common.ErrNotFound,
	common.ErrIndex,
	common.ErrAuthentication,
	common.ErrEmptyDirectory,
	common.ErrStorageCorruption,
}

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// report prints a domain error for the operator and swallows it, so the
// current menu continues. Anything else (storage failures, end of input)
// is returned for the menu loop to stop on.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if !isDomainError(err) {
		return err
	}
	a.log.Debug(ctx, "operation rejected", "error", err)

	switch {
	case errors.Is(err, common.ErrEmptyDirectory):
		a.println("No users available. Please sign up first.")
	case errors.Is(err, common.ErrAuthentication):
		a.println("Invalid username or password.")
	case errors.Is(err, common.ErrIndex):
		a.println("Invalid selection.")
	case errors.Is(err, common.ErrNotFound):
		a.println("Product not found.")
	default:
		a.println("Error:", err.Error())
	}
	return nil
}
