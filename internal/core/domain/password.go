package domain

import "strings"

const (
	passwordMinLen = 8
	passwordMaxLen = 16

	// passwordSymbols is the fixed punctuation set; at least one is required.
	passwordSymbols = "!@#$%^&*"

	minNameLen    = 2
	maxNameLen    = 60
	maxAddressLen = 400
)

// ValidatePassword enforces the account password policy: 8-16 characters
// with at least one uppercase letter and one symbol from the fixed set.
// Go's regexp has no lookahead, so the checks are explicit scans.
func ValidatePassword(pw string) error {
	if len(pw) < passwordMinLen || len(pw) > passwordMaxLen {
		return Validationf("password must be 8-16 characters")
	}
	var hasUpper, hasSymbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		return Validationf("password must contain an uppercase letter")
	}
	if !hasSymbol {
		return Validationf("password must contain one of " + passwordSymbols)
	}
	return nil
}

// ValidateName enforces the canonical display-name bound of 2-60 characters.
func ValidateName(name string) error {
	if len(name) < minNameLen || len(name) > maxNameLen {
		return Validationf("name must be 2-60 characters")
	}
	return nil
}

// ValidateAddress rejects addresses longer than 400 characters. Empty is
// allowed; not every account carries one.
func ValidateAddress(addr string) error {
	if len(addr) > maxAddressLen {
		return Validationf("address must be at most 400 characters")
	}
	return nil
}
