package amounts

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/zdziszkee/account-codes/internal/models"
)

const DefaultSeparator = ","

// Formatter renders amount strings for display.
// The zero value groups with commas and tolerates leading zeros.
type Formatter struct {
	Separator string
	// Strict reports a leading zero on a multi-digit integer part as an
	// input error instead of stripping it.
	Strict bool
}

// NewFormatter creates a formatter with the default separator
func NewFormatter() *Formatter {
	return &Formatter{Separator: DefaultSeparator}
}

func (f *Formatter) separator() string {
	if f.Separator == "" {
		return DefaultSeparator
	}
	return f.Separator
}

// ValidateSeparator rejects separators that could be mistaken for part of an
// amount: digits, signs, the decimal point and whitespace.
func ValidateSeparator(separator string) error {
	if separator == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSeparator)
	}
	for _, r := range separator {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune("+-.", r) {
			return fmt.Errorf("%w: %q", ErrInvalidSeparator, separator)
		}
	}
	return nil
}

// clean trims surrounding whitespace and removes separators that sit between
// two integer digits. Anything else is left for parseAmount to reject.
func (f *Formatter) clean(amount string) (string, error) {
	separator := f.separator()
	if err := ValidateSeparator(separator); err != nil {
		return "", err
	}

	amount = strings.TrimSpace(amount)
	integer, fraction, hasFraction := strings.Cut(amount, ".")

	var b strings.Builder
	for i := 0; i < len(integer); {
		if strings.HasPrefix(integer[i:], separator) && i > 0 && isDigit(integer[i-1]) {
			next := i + len(separator)
			if next < len(integer) && isDigit(integer[next]) {
				i = next
				continue
			}
		}
		b.WriteByte(integer[i])
		i++
	}
	if hasFraction {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// GroupThousands inserts the separator every three integer digits from the
// right, e.g. "-1234567" becomes "-1,234,567". The fractional part is kept as
// written. The unknown-amount marker 888888888888 always renders as "?".
func (f *Formatter) GroupThousands(amount string) (string, error) {
	amount, err := f.clean(amount)
	if err != nil {
		return "", err
	}
	if amount == "" {
		return "", nil
	}
	if amount == UnknownAmount {
		return UnknownAmountMark, nil
	}

	parsed, err := parseAmount(amount)
	if err != nil {
		return "", err
	}
	if f.Strict && len(parsed.integer) > 1 && parsed.integer[0] == '0' {
		return "", fmt.Errorf("%w: leading zero in %q", ErrInvalidAmountFormat, amount)
	}

	var b strings.Builder
	if parsed.negative && !parsed.isZero() {
		b.WriteByte('-')
	}
	b.WriteString(groupDigits(parsed.significant(), f.separator()))
	if parsed.fraction != "" {
		b.WriteByte('.')
		b.WriteString(parsed.fraction)
	}
	return b.String(), nil
}

// GroupDecimal groups a decimal value rounded to the given number of places
func (f *Formatter) GroupDecimal(amount decimal.Decimal, places int32) (string, error) {
	return f.GroupThousands(amount.StringFixed(places))
}

// ToKoreanWords spells the amount out in Korean numerals followed by the
// unit suffix, e.g. "15000" won becomes "일만오천 원".
func (f *Formatter) ToKoreanWords(amount string, unit models.AmountUnit) (string, error) {
	suffix, err := unitSuffix(unit)
	if err != nil {
		return "", err
	}

	cleaned, err := f.clean(amount)
	if err != nil {
		return "", err
	}
	parsed, err := parseAmount(cleaned)
	if err != nil {
		return "", err
	}

	integer := parsed.significant()
	if len(integer) > maxIntegerDigits {
		return RangeExceededPhrase, fmt.Errorf("%w: %d integer digits", ErrRangeExceeded, len(integer))
	}

	var b strings.Builder
	if parsed.negative && !parsed.isZero() {
		b.WriteString(minusWord)
	}
	if words := readInteger(integer); words != "" {
		b.WriteString(words)
	} else {
		b.WriteString(zeroWord)
	}
	b.WriteString(readFraction(parsed.fraction))
	b.WriteString(suffix)
	return b.String(), nil
}

func groupDigits(digits, separator string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
