package mocks

import (
	"context"

	models "github.com/zdziszkee/account-codes/internal/models"
)

// MockOwnAccountRepository implements the OwnAccountRepository interface for testing
type MockOwnAccountRepository struct {
	ListByCustomerFunc func(ctx context.Context, customerID string) ([]models.OwnAccount, error)
	GetFunc            func(ctx context.Context, customerID, accountNumber string) (*models.OwnAccount, error)
	CreateFunc         func(ctx context.Context, account *models.OwnAccount) error
	CreateBatchFunc    func(ctx context.Context, accounts []*models.OwnAccount) error
	DeleteFunc         func(ctx context.Context, customerID, accountNumber string) error
}

func (m *MockOwnAccountRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.OwnAccount, error) {
	return m.ListByCustomerFunc(ctx, customerID)
}

func (m *MockOwnAccountRepository) Get(ctx context.Context, customerID, accountNumber string) (*models.OwnAccount, error) {
	return m.GetFunc(ctx, customerID, accountNumber)
}

func (m *MockOwnAccountRepository) Create(ctx context.Context, account *models.OwnAccount) error {
	return m.CreateFunc(ctx, account)
}

func (m *MockOwnAccountRepository) CreateBatch(ctx context.Context, accounts []*models.OwnAccount) error {
	return m.CreateBatchFunc(ctx, accounts)
}

func (m *MockOwnAccountRepository) Delete(ctx context.Context, customerID, accountNumber string) error {
	return m.DeleteFunc(ctx, customerID, accountNumber)
}
