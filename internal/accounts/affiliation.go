package accounts

import (
	"strings"

	"github.com/zdziszkee/account-codes/internal/models"
)

const virtualAffiliationPrefix = "793"

// ClassifyAffiliation resolves the issuing affiliation (중조구분) of an
// account. The decision uses only the length and, for 13-digit accounts, the
// check digit. Unknown shapes and non-digit input are central.
func ClassifyAffiliation(account string) models.Affiliation {
	normalized := Normalize(account)
	if !isDigits(normalized) {
		return models.AffiliationCentral
	}

	switch len(normalized) {
	case 11, 12, 15:
		return models.AffiliationCentral
	case 13:
		return affiliationByLastDigit(normalized[len(normalized)-1])
	case 14:
		if strings.HasPrefix(normalized, virtualAffiliationPrefix) {
			return models.AffiliationVirtual
		}
		return models.AffiliationRegional
	default:
		return models.AffiliationCentral
	}
}

func affiliationByLastDigit(digit byte) models.Affiliation {
	switch digit {
	case '1', '2':
		return models.AffiliationCentral
	case '3', '4', '5':
		return models.AffiliationRegional
	case '6', '7':
		return models.AffiliationBranchCoop
	case '8', '9':
		return models.AffiliationVirtual
	default:
		return models.AffiliationCentral
	}
}
