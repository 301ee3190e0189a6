package accounts

import "strings"

// Validator supplies the predicates the classifier cannot derive from the
// digits alone. Every method receives a normalized account number.
type Validator interface {
	IsVirtualAccount(account string) bool
	IsNewAccount(account string) bool
	IsMyAccount(account string) bool
}

// RuleValidator is the default Validator. Virtual and new-format accounts are
// recognised by their 14-digit prefix, own accounts by set membership.
type RuleValidator struct {
	owned map[string]struct{}
}

// NewRuleValidator creates a validator that treats the given accounts as owned
func NewRuleValidator(owned ...string) *RuleValidator {
	v := &RuleValidator{owned: make(map[string]struct{}, len(owned))}
	for _, account := range owned {
		if normalized := Normalize(account); normalized != "" {
			v.owned[normalized] = struct{}{}
		}
	}
	return v
}

// IsVirtualAccount reports 14-digit accounts issued from the 79x virtual range
func (v *RuleValidator) IsVirtualAccount(account string) bool {
	return len(account) == 14 && strings.HasPrefix(account, "79")
}

// IsNewAccount reports 14-digit accounts in the new format, which lead with the subject code
func (v *RuleValidator) IsNewAccount(account string) bool {
	return len(account) == 14 && account[0] == '3'
}

func (v *RuleValidator) IsMyAccount(account string) bool {
	_, ok := v.owned[account]
	return ok
}
