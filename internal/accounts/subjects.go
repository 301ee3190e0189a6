package accounts

import "github.com/zdziszkee/account-codes/internal/models"

const (
	subjectLoan    models.SubjectCode = "030"
	subjectVirtual models.SubjectCode = "079"
)

// subjectAliases collapses legacy subject codes onto their canonical code.
// Codes in the 3xx and 5xx ranges are the regional and branch issues of the
// 0xx product.
var subjectAliases = map[string]models.SubjectCode{
	"001": "001", "301": "001", "501": "001",
	"002": "002", "302": "002", "502": "002",
	"005": "005", "305": "005", "505": "005",
	"006": "006", "306": "006", "506": "006",
	"010": "010", "310": "010", "510": "010",
	"012": "012", "312": "012", "512": "012",
	"017": "017", "317": "017", "517": "017",
	"021": "021", "321": "021", "521": "021",
	"030": "030", "330": "030", "530": "030",
	"040": "040", "340": "040", "540": "040",
	"050": "050", "350": "050", "550": "050",
	"079": "079", "379": "079", "579": "079",
}

// subjectTypes maps a canonical subject code to its account type. The loan
// subject is absent: its type depends on the affiliation.
var subjectTypes = map[models.SubjectCode]models.AccountTypeCode{
	"001": models.TypeDemand,
	"002": models.TypeDemand,
	"005": models.TypeDemandVariant,
	"006": models.TypeDemandVariant,
	"010": models.TypeSavings,
	"012": models.TypeSavings,
	"017": models.TypeFundTrust,
	"021": models.TypeFundTrust,
	"040": models.TypePassbook,
	"050": models.TypeForeignCurrency,
	"079": models.TypeVirtual,
}

type digitRange struct {
	start, end int
}

// subjectPositions locates the subject code inside an account of each length
var subjectPositions = map[int]digitRange{
	9:  {0, 3},
	10: {0, 3},
	11: {3, 6},
	12: {3, 6},
	13: {0, 3},
	14: {6, 9},
	15: {3, 6},
	16: {4, 7},
}

// newFormatPosition is used for 14-digit accounts the validator reports as new-format
var newFormatPosition = digitRange{0, 3}

// CanonicalSubject maps a raw 3-digit code through the alias table
func CanonicalSubject(code string) models.SubjectCode {
	if canonical, ok := subjectAliases[code]; ok {
		return canonical
	}
	return models.SubjectUnclassified
}
