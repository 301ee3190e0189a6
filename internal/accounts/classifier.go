package accounts

import (
	"github.com/zdziszkee/account-codes/internal/models"
)

// Classifier derives account type and subject codes from account numbers.
// It holds no mutable state and is safe for concurrent use as long as its
// Validator is.
type Classifier struct {
	validator Validator
}

// NewClassifier creates a classifier. A nil validator falls back to a
// RuleValidator with no owned accounts.
func NewClassifier(validator Validator) *Classifier {
	if validator == nil {
		validator = NewRuleValidator()
	}
	return &Classifier{validator: validator}
}

// ClassifyType returns the account type code. It never fails; anything it
// cannot read degrades to TypeUnclassified.
func (c *Classifier) ClassifyType(account string) models.AccountTypeCode {
	normalized := Normalize(account)
	if !isDigits(normalized) {
		return models.TypeUnclassified
	}
	if c.validator.IsMyAccount(normalized) {
		return models.TypeOwn
	}

	switch len(normalized) {
	case 16:
		return models.TypeSavings
	case 14:
		if c.validator.IsVirtualAccount(normalized) {
			return models.TypeVirtual
		}
	}

	return typeForSubject(c.subject(normalized), normalized)
}

// SubjectCode returns the canonical subject code, SubjectOwn for own accounts
// and SubjectUnclassified when no rule matches.
func (c *Classifier) SubjectCode(account string) models.SubjectCode {
	normalized := Normalize(account)
	if !isDigits(normalized) {
		return models.SubjectUnclassified
	}
	if c.validator.IsMyAccount(normalized) {
		return models.SubjectOwn
	}
	return c.subject(normalized)
}

// Classify runs every derivation for one account
func (c *Classifier) Classify(account string) models.Classification {
	return models.Classification{
		Account:     Normalize(account),
		Type:        c.ClassifyType(account),
		Subject:     c.SubjectCode(account),
		Affiliation: ClassifyAffiliation(account),
	}
}

func (c *Classifier) subject(account string) models.SubjectCode {
	if len(account) == 14 {
		if c.validator.IsVirtualAccount(account) {
			return subjectVirtual
		}
		if c.validator.IsNewAccount(account) {
			return CanonicalSubject(account[newFormatPosition.start:newFormatPosition.end])
		}
	}

	position, ok := subjectPositions[len(account)]
	if !ok {
		return models.SubjectUnclassified
	}
	return CanonicalSubject(account[position.start:position.end])
}

func typeForSubject(subject models.SubjectCode, account string) models.AccountTypeCode {
	if subject == subjectLoan {
		if ClassifyAffiliation(account) == models.AffiliationCentral {
			return models.TypeLoanCentral
		}
		return models.TypeLoanRegional
	}
	if accountType, ok := subjectTypes[subject]; ok {
		return accountType
	}
	return models.TypeUnclassified
}
