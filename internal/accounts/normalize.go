package accounts

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

var ErrInvalidAccount = errors.New("invalid account number")

const (
	MinLength = 9
	MaxLength = 16
)

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// Normalize strips whitespace and hyphens. Full-width digits typed through a
// Korean IME are narrowed first so "１２３－４５" reads as "12345".
func Normalize(account string) string {
	account = width.Narrow.String(account)
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, account)
}

// Validate normalizes the account and checks it is 9 to 16 ASCII digits
func Validate(account string) (string, error) {
	normalized := Normalize(account)
	if !digitsRegex.MatchString(normalized) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccount, account)
	}
	if len(normalized) < MinLength || len(normalized) > MaxLength {
		return "", fmt.Errorf("%w: %q has %d digits, expected %d-%d", ErrInvalidAccount, account, len(normalized), MinLength, MaxLength)
	}
	return normalized, nil
}

func isDigits(s string) bool {
	return digitsRegex.MatchString(s)
}
