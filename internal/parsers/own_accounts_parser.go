package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/zdziszkee/account-codes/internal/accounts"
	models "github.com/zdziszkee/account-codes/internal/models"
	readers "github.com/zdziszkee/account-codes/internal/readers"
)

const (
	maxCustomerIDLength = 64
	maxAliasLength      = 100
)

var customerIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type OwnAccountsParser interface {
	ParseOwnAccounts(records []readers.OwnAccountRecord) ([]models.OwnAccount, error)
}

// DefaultOwnAccountsParser validates raw records and drops the invalid ones
// with a log entry. Repeated (customer, account) pairs keep the first row.
type DefaultOwnAccountsParser struct {
	Logger *zap.Logger
}

func (p DefaultOwnAccountsParser) ParseOwnAccounts(records []readers.OwnAccountRecord) ([]models.OwnAccount, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var parsed []models.OwnAccount
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		rowLogger := logger.With(zap.Int("index", record.Index))

		if record.CustomerID == "" {
			rowLogger.Warn("validation error: customer id cannot be empty")
			continue
		}
		if len(record.CustomerID) > maxCustomerIDLength {
			rowLogger.Warn("validation error: customer id exceeds maximum length", zap.String("customer_id", record.CustomerID))
			continue
		}
		if !customerIDRegex.MatchString(record.CustomerID) {
			rowLogger.Warn("validation error: customer id contains invalid characters", zap.String("customer_id", record.CustomerID))
			continue
		}

		accountNumber, err := accounts.Validate(record.AccountNumber)
		if err != nil {
			rowLogger.Warn("validation error: invalid account number", zap.Error(err))
			continue
		}

		alias := sanitizeAlias(record.Alias)
		if utf8.RuneCountInString(alias) > maxAliasLength {
			rowLogger.Warn("validation error: alias exceeds maximum length", zap.String("account", accountNumber))
			continue
		}

		key := record.CustomerID + "/" + accountNumber
		if _, ok := seen[key]; ok {
			rowLogger.Info("skipping duplicate own account", zap.String("customer_id", record.CustomerID), zap.String("account", accountNumber))
			continue
		}
		seen[key] = struct{}{}

		parsed = append(parsed, models.OwnAccount{
			CustomerID:    record.CustomerID,
			AccountNumber: accountNumber,
			Alias:         alias,
		})
	}

	return parsed, nil
}

// sanitizeAlias drops control characters and collapses runs of whitespace
func sanitizeAlias(alias string) string {
	alias = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, alias)
	return strings.Join(strings.Fields(alias), " ")
}
