package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
)

// PasswordLength is the exact length every password must have.
const PasswordLength = 7

// MinSearchTerm is the shortest accepted search term, in characters.
const MinSearchTerm = 3

// ParsePrice converts operator input to a non-negative, finite price.
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: invalid price %q", common.ErrValidation, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", common.ErrValidation)
	}
	return v, nil
}

// ParseQuantity converts operator input to a non-negative whole number.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid quantity %q", common.ErrValidation, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: quantity must not be negative", common.ErrValidation)
	}
	return n, nil
}

// ValidatePassword enforces the account password rule: exactly
// PasswordLength characters with at least one letter and one digit.
func ValidatePassword(p string) error {
	if utf8.RuneCountInString(p) != PasswordLength {
		return fmt.Errorf("%w: password must be exactly %d characters", common.ErrValidation, PasswordLength)
	}
	var letter, digit bool
	for _, r := range p {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLetter(r):
			letter = true
		}
	}
	if !letter || !digit {
		return fmt.Errorf("%w: password must contain letters and numbers", common.ErrValidation)
	}
	return nil
}

// ValidateUsername rejects names that cannot key a catalog file.
func ValidateUsername(u string) error {
	switch {
	case strings.TrimSpace(u) == "":
		return fmt.Errorf("%w: username is required", common.ErrValidation)
	case u == "." || u == "..", strings.ContainsAny(u, `/\`):
		return fmt.Errorf("%w: username %q is not allowed", common.ErrValidation, u)
	}
	return nil
}

func validPrice(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: price must be a non-negative number", common.ErrValidation)
	}
	return nil
}
