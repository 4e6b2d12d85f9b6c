// Package models defines the records stored by stockkeeper: catalog
// products and user accounts.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ProductIDPrefix starts every product identifier.
const ProductIDPrefix = "PD10"

var ErrIncorrectProductID = errors.New("product id must be PD10 followed by digits")

// Product is a single catalog line.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (p Product) String() string {
	return fmt.Sprintf("%s (ID: %s) - Price: %s, Stock: %d", p.Name, p.ID, FormatPrice(p.Price), p.Quantity)
}

// Validate reports whether p could have been produced by a catalog.
// It does not check the configurable upper bound on quantity.
func (p Product) Validate() error {
	if _, err := ProductSeq(p.ID); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product %s: empty name", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: negative price", p.ID)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product %s: negative quantity", p.ID)
	}
	return nil
}

// ProductID formats a sequence value as PD10 followed by at least four
// zero-padded digits, e.g. 1 -> "PD100001".
func ProductID(seq int) string {
	return fmt.Sprintf("%s%04d", ProductIDPrefix, seq)
}

// ProductSeq is the inverse of ProductID.
func ProductSeq(id string) (int, error) {
	digits, ok := strings.CutPrefix(id, ProductIDPrefix)
	if !ok || digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrIncorrectProductID, id)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrIncorrectProductID, id)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIncorrectProductID, id)
	}
	return n, nil
}

// FormatPrice renders a price the shortest way that round-trips,
// so 9.99 prints as "9.99" and 10 as "10".
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
