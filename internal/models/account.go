package models

// AccountTypeCode is the classification bucket derived from an account number
type AccountTypeCode string

const (
	TypeOwn             AccountTypeCode = "0"
	TypeDemand          AccountTypeCode = "1"
	TypeDemandVariant   AccountTypeCode = "2"
	TypeSavings         AccountTypeCode = "3"
	TypeFundTrust       AccountTypeCode = "4"
	TypeLoanCentral     AccountTypeCode = "5"
	TypeLoanRegional    AccountTypeCode = "6"
	TypePassbook        AccountTypeCode = "7"
	TypeForeignCurrency AccountTypeCode = "8"
	TypeVirtual         AccountTypeCode = "9"
	TypeUnclassified    AccountTypeCode = "999"
)

// SubjectCode is the 3-digit product code (과목코드) embedded in an account number
type SubjectCode string

const (
	SubjectOwn          SubjectCode = "000"
	SubjectUnclassified SubjectCode = "999"
)

// Affiliation is the issuing affiliation of an account (중조구분)
type Affiliation string

const (
	AffiliationCentral    Affiliation = "central"
	AffiliationRegional   Affiliation = "regional"
	AffiliationBranchCoop Affiliation = "branch_coop"
	AffiliationVirtual    Affiliation = "virtual"
)

// AmountUnit selects the suffix of a Korean currency phrase
type AmountUnit string

const (
	UnitWon    AmountUnit = "won"
	UnitMan    AmountUnit = "man"
	UnitSipman AmountUnit = "sipman"
	UnitDollar AmountUnit = "dollar"
)

// Classification bundles everything derived from one account number
type Classification struct {
	Account     string          `json:"account"`
	Type        AccountTypeCode `json:"type"`
	Subject     SubjectCode     `json:"subject"`
	Affiliation Affiliation     `json:"affiliation"`
}

// OwnAccount is a row of the own-account registry
type OwnAccount struct {
	ID            string `db:"id" json:"id"`
	CustomerID    string `db:"customer_id" json:"customerId"`
	AccountNumber string `db:"account_number" json:"accountNumber"`
	Alias         string `db:"alias" json:"alias,omitempty"`
}

// FormattedAccount carries the display renderings of an account number
type FormattedAccount struct {
	Account    string `json:"account"`
	Hyphenated string `json:"hyphenated"`
	Masked     string `json:"masked"`
}

// FormattedDate carries the display renderings of a YYYYMMDD date
type FormattedDate struct {
	Date   string `json:"date"`
	Dotted string `json:"dotted"`
	Korean string `json:"korean"`
}

// AmountWords is an amount spelled out in Korean together with the unit applied
type AmountWords struct {
	Amount string     `json:"amount"`
	Unit   AmountUnit `json:"unit"`
	Words  string     `json:"words"`
}

// ImportSummary reports the outcome of a bulk own-account import
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
