package amounts

import (
	"fmt"
	"strings"

	"github.com/zdziszkee/account-codes/internal/models"
)

// maxIntegerDigits covers the 일, 만, 억 and 조 tiers
const maxIntegerDigits = 16

const (
	zeroWord     = "영"
	minusWord    = "마이너스 "
	decimalPoint = "점"
)

var (
	digitWords    = [10]string{"", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}
	positionWords = [4]string{"", "십", "백", "천"}
	tierWords     = [4]string{"", "만", "억", "조"}
)

var unitSuffixes = map[models.AmountUnit]string{
	models.UnitWon:    " 원",
	models.UnitMan:    "만 원",
	models.UnitSipman: "십만 원",
	models.UnitDollar: " 달러",
}

func unitSuffix(unit models.AmountUnit) (string, error) {
	if unit == "" {
		unit = models.UnitWon
	}
	suffix, ok := unitSuffixes[unit]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	return suffix, nil
}

// ParseUnit converts a query or flag value into an AmountUnit
func ParseUnit(value string) (models.AmountUnit, error) {
	unit := models.AmountUnit(strings.ToLower(strings.TrimSpace(value)))
	if _, err := unitSuffix(unit); err != nil {
		return "", err
	}
	if unit == "" {
		return models.UnitWon, nil
	}
	return unit, nil
}

// readInteger walks the digits from least to most significant and builds the
// phrase backwards. A tier marker is owed from the tier boundary onwards and
// paid by the first nonzero digit of that tier, so an all-zero tier emits
// nothing.
func readInteger(digits string) string {
	var reversed []string
	appendTier := false

	for i := 0; i < len(digits); i++ {
		digit := digits[len(digits)-1-i] - '0'
		tier, position := i/4, i%4

		if position == 0 && tier > 0 {
			appendTier = true
		}
		if digit == 0 {
			continue
		}
		if appendTier {
			reversed = append(reversed, tierWords[tier])
			appendTier = false
		}
		if position > 0 {
			reversed = append(reversed, positionWords[position])
		}
		reversed = append(reversed, digitWords[digit])
	}

	var b strings.Builder
	for i := len(reversed) - 1; i >= 0; i-- {
		b.WriteString(reversed[i])
	}
	return b.String()
}

// readFraction reads digits after the point one by one; trailing zeros are dropped
func readFraction(fraction string) string {
	fraction = strings.TrimRight(fraction, "0")
	if fraction == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(decimalPoint)
	for _, r := range fraction {
		if r == '0' {
			b.WriteString(zeroWord)
			continue
		}
		b.WriteString(digitWords[r-'0'])
	}
	return b.String()
}
