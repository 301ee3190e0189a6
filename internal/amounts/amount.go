package amounts

import (
	"fmt"
	"regexp"
	"strings"
)

var amountRegex = regexp.MustCompile(`^([+-]?)([0-9]+)(?:\.([0-9]+))?$`)

type parsedAmount struct {
	negative bool
	integer  string // as written, leading zeros kept
	fraction string
}

func parseAmount(amount string) (parsedAmount, error) {
	match := amountRegex.FindStringSubmatch(amount)
	if match == nil {
		return parsedAmount{}, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, amount)
	}
	return parsedAmount{
		negative: match[1] == "-",
		integer:  match[2],
		fraction: match[3],
	}, nil
}

// significant returns the integer digits without leading zeros, "0" for zero
func (p parsedAmount) significant() string {
	trimmed := strings.TrimLeft(p.integer, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func (p parsedAmount) isZero() bool {
	return p.significant() == "0" && strings.Trim(p.fraction, "0") == ""
}
