// Package services implements the stockkeeper domain: the per-user catalog
// store, the shared user directory and the admin summary across catalogs.
//
// Services take already-parsed values and return sentinel errors from
// package common; they never prompt. Every mutating call validates first
// and then persists, so a failed call leaves both memory and disk as they
// were.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/products"
)

// Direction selects restock or sale in AdjustQuantity.
type Direction int

const (
	Increase Direction = iota + 1
	Decrease
)

// ParseDirection maps the menu symbols "+" and "-" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.TrimSpace(s) {
	case "+":
		return Increase, nil
	case "-":
		return Decrease, nil
	}
	return 0, fmt.Errorf("%w: invalid action %q", common.ErrValidation, s)
}

// CatalogLimits bounds a single catalog.
type CatalogLimits struct {
	MaxProducts int
	MaxQuantity int
}

// CatalogService is the catalog store of one user.
//
// A product reference (ref) is matched first against product ids, then
// case-insensitively against names.
type CatalogService interface {
	Add(ctx context.Context, name string, price float64, quantity int) (string, error)
	CanAdd(name string) error
	AdjustQuantity(ctx context.Context, ref string, amount int, dir Direction) (models.Product, error)
	SetPrice(ctx context.Context, ref string, price float64) (models.Product, error)
	Remove(ctx context.Context, ref string, confirmed bool) (models.Product, error)
	Find(name string) (models.Product, bool)
	Lookup(ref string) (models.Product, bool)
	Search(term string) ([]models.Product, error)
	List() []models.Product
	Limits() CatalogLimits
}

type catalogService struct {
	repo    products.Repository
	limits  CatalogLimits
	log     logging.Logger
	items   []models.Product
	nextSeq int
}

// NewCatalogService loads the catalog held by repo.
//
// A corrupted file is logged and replaced by an empty catalog in memory;
// the file itself is only overwritten by the next mutation. Other I/O
// errors are returned.
func NewCatalogService(ctx context.Context, repo products.Repository, limits CatalogLimits, log logging.Logger) (CatalogService, error) {
	items, err := repo.Load(ctx)
	if errors.Is(err, common.ErrStorageCorruption) {
		log.Warn(ctx, "error loading product data, starting with an empty inventory", "path", repo.Path(), "error", err)
		items = []models.Product{}
	} else if err != nil {
		return nil, err
	}

	s := &catalogService{repo: repo, limits: limits, log: log, items: items, nextSeq: 1}
	for _, p := range items {
		// Load already validated every id.
		seq, _ := models.ProductSeq(p.ID)
		s.nextSeq = max(s.nextSeq, seq+1)
	}
	return s, nil
}

func (s *catalogService) Limits() CatalogLimits {
	return s.limits
}

// Add creates a product and returns its id.
func (s *catalogService) Add(ctx context.Context, name string, price float64, quantity int) (string, error) {
	if err := s.CanAdd(name); err != nil {
		return "", err
	}
	if err := validPrice(price); err != nil {
		return "", err
	}
	if quantity < 0 {
		return "", fmt.Errorf("%w: quantity must not be negative", common.ErrValidation)
	}
	if quantity > s.limits.MaxQuantity {
		return "", fmt.Errorf("%w: total quantity cannot exceed %d", common.ErrCapacity, s.limits.MaxQuantity)
	}

	p := models.Product{ID: models.ProductID(s.nextSeq), Name: name, Price: price, Quantity: quantity}
	if err := s.commit(ctx, append(slices.Clone(s.items), p)); err != nil {
		return "", err
	}
	s.nextSeq++

	s.log.Debug(ctx, "product added", "id", p.ID, "name", p.Name)
	return p.ID, nil
}

// CanAdd runs the checks of Add that do not depend on price or quantity:
// name uniqueness, catalog capacity and the name itself. A name that reads
// as a product id is refused, since references try ids first.
func (s *catalogService) CanAdd(name string) error {
	if _, ok := s.Find(name); ok {
		return fmt.Errorf("%w: a product with the name '%s' already exists", common.ErrDuplicateName, name)
	}
	if len(s.items) >= s.limits.MaxProducts {
		return fmt.Errorf("%w: maximum number of products (%d) reached", common.ErrCapacity, s.limits.MaxProducts)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name is required", common.ErrValidation)
	}
	if _, err := models.ProductSeq(strings.ToUpper(strings.TrimSpace(name))); err == nil {
		return fmt.Errorf("%w: product name %q looks like a product id", common.ErrValidation, name)
	}
	return nil
}

// AdjustQuantity restocks (Increase) or sells (Decrease) amount units.
//
// A sale may bring stock down to zero. A restock must leave stock in
// (0, MaxQuantity], so a restock by zero of an empty product fails.
func (s *catalogService) AdjustQuantity(ctx context.Context, ref string, amount int, dir Direction) (models.Product, error) {
	i, err := s.indexOf(ref)
	if err != nil {
		return models.Product{}, err
	}
	if amount < 0 {
		return models.Product{}, fmt.Errorf("%w: quantity must not be negative", common.ErrValidation)
	}

	p := s.items[i]
	switch dir {
	case Decrease:
		if p.Quantity < amount {
			return models.Product{}, fmt.Errorf("%w: only %d of %s in stock", common.ErrInsufficientStock, p.Quantity, p.Name)
		}
		p.Quantity -= amount
	case Increase:
		total := p.Quantity + amount
		if total <= 0 || total > s.limits.MaxQuantity {
			return models.Product{}, fmt.Errorf("%w: total quantity must be between 1 and %d", common.ErrCapacity, s.limits.MaxQuantity)
		}
		p.Quantity = total
	default:
		return models.Product{}, fmt.Errorf("%w: unknown direction %d", common.ErrValidation, dir)
	}

	if err := s.replace(ctx, i, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *catalogService) SetPrice(ctx context.Context, ref string, price float64) (models.Product, error) {
	i, err := s.indexOf(ref)
	if err != nil {
		return models.Product{}, err
	}
	if err := validPrice(price); err != nil {
		return models.Product{}, err
	}

	p := s.items[i]
	p.Price = price
	if err := s.replace(ctx, i, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Remove deletes the referenced product. Without confirmation nothing
// changes and common.ErrCanceled is returned.
func (s *catalogService) Remove(ctx context.Context, ref string, confirmed bool) (models.Product, error) {
	i, err := s.indexOf(ref)
	if err != nil {
		return models.Product{}, err
	}
	p := s.items[i]
	if !confirmed {
		return p, fmt.Errorf("%w: product deletion canceled", common.ErrCanceled)
	}

	if err := s.commit(ctx, slices.Delete(slices.Clone(s.items), i, i+1)); err != nil {
		return models.Product{}, err
	}
	s.log.Debug(ctx, "product removed", "id", p.ID, "name", p.Name)
	return p, nil
}

// Find matches name exactly, ignoring case.
func (s *catalogService) Find(name string) (models.Product, bool) {
	for _, p := range s.items {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *catalogService) Lookup(ref string) (models.Product, bool) {
	i, err := s.indexOf(ref)
	if err != nil {
		return models.Product{}, false
	}
	return s.items[i], true
}

// Search returns products whose name contains term, ignoring case, in
// catalog order.
func (s *catalogService) Search(term string) ([]models.Product, error) {
	if utf8.RuneCountInString(term) < MinSearchTerm {
		return nil, fmt.Errorf("%w: enter at least %d letters to search", common.ErrValidation, MinSearchTerm)
	}
	needle := strings.ToLower(term)

	var found []models.Product
	for _, p := range s.items {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			found = append(found, p)
		}
	}
	return found, nil
}

func (s *catalogService) List() []models.Product {
	return slices.Clone(s.items)
}

func (s *catalogService) indexOf(ref string) (int, error) {
	if i := slices.IndexFunc(s.items, func(p models.Product) bool { return p.ID == ref }); i >= 0 {
		return i, nil
	}
	if i := slices.IndexFunc(s.items, func(p models.Product) bool { return strings.EqualFold(p.Name, ref) }); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: product %q", common.ErrNotFound, ref)
}

func (s *catalogService) replace(ctx context.Context, i int, p models.Product) error {
	next := slices.Clone(s.items)
	next[i] = p
	return s.commit(ctx, next)
}

// commit persists next and only then makes it the in-memory catalog.
func (s *catalogService) commit(ctx context.Context, next []models.Product) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}
