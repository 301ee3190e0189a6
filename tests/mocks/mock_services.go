package mocks

import (
	"context"

	"github.com/shopspring/decimal"

	models "github.com/zdziszkee/account-codes/internal/models"
)

// MockAccountService implements service.AccountService.
type MockAccountService struct {
	ClassifyFunc           func(ctx context.Context, customerID, account string) (*models.Classification, error)
	AffiliationFunc        func(account string) models.Affiliation
	FormatFunc             func(account string) (*models.FormattedAccount, error)
	ListOwnAccountsFunc    func(ctx context.Context, customerID string) ([]models.OwnAccount, error)
	RegisterOwnAccountFunc func(ctx context.Context, account *models.OwnAccount) error
	RemoveOwnAccountFunc   func(ctx context.Context, customerID, account string) error
	ImportOwnAccountsFunc  func(ctx context.Context, ownAccounts []models.OwnAccount) (*models.ImportSummary, error)
}

func (m *MockAccountService) Classify(ctx context.Context, customerID, account string) (*models.Classification, error) {
	return m.ClassifyFunc(ctx, customerID, account)
}

func (m *MockAccountService) Affiliation(account string) models.Affiliation {
	return m.AffiliationFunc(account)
}

func (m *MockAccountService) Format(account string) (*models.FormattedAccount, error) {
	return m.FormatFunc(account)
}

func (m *MockAccountService) ListOwnAccounts(ctx context.Context, customerID string) ([]models.OwnAccount, error) {
	return m.ListOwnAccountsFunc(ctx, customerID)
}

func (m *MockAccountService) RegisterOwnAccount(ctx context.Context, account *models.OwnAccount) error {
	return m.RegisterOwnAccountFunc(ctx, account)
}

func (m *MockAccountService) RemoveOwnAccount(ctx context.Context, customerID, account string) error {
	return m.RemoveOwnAccountFunc(ctx, customerID, account)
}

func (m *MockAccountService) ImportOwnAccounts(ctx context.Context, ownAccounts []models.OwnAccount) (*models.ImportSummary, error) {
	return m.ImportOwnAccountsFunc(ctx, ownAccounts)
}

// MockFormatService implements service.FormatService.
type MockFormatService struct {
	GroupFunc        func(amount string, strict bool) (string, error)
	GroupDecimalFunc func(amount decimal.Decimal, places int32) (string, error)
	WordsFunc        func(amount, unit string) (*models.AmountWords, error)
	DateFunc         func(date string) (*models.FormattedDate, error)
}

func (m *MockFormatService) Group(amount string, strict bool) (string, error) {
	return m.GroupFunc(amount, strict)
}

func (m *MockFormatService) GroupDecimal(amount decimal.Decimal, places int32) (string, error) {
	return m.GroupDecimalFunc(amount, places)
}

func (m *MockFormatService) Words(amount, unit string) (*models.AmountWords, error) {
	return m.WordsFunc(amount, unit)
}

func (m *MockFormatService) Date(date string) (*models.FormattedDate, error) {
	return m.DateFunc(date)
}
