package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zdziszkee/account-codes/internal/accounts"
	models "github.com/zdziszkee/account-codes/internal/models"
	repository "github.com/zdziszkee/account-codes/internal/repositories"
)

var customerIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// AccountService handles classification and the own-account registry
type AccountService interface {
	Classify(ctx context.Context, customerID, account string) (*models.Classification, error)
	Affiliation(account string) models.Affiliation
	Format(account string) (*models.FormattedAccount, error)
	ListOwnAccounts(ctx context.Context, customerID string) ([]models.OwnAccount, error)
	RegisterOwnAccount(ctx context.Context, account *models.OwnAccount) error
	RemoveOwnAccount(ctx context.Context, customerID, account string) error
	ImportOwnAccounts(ctx context.Context, ownAccounts []models.OwnAccount) (*models.ImportSummary, error)
}

// accountService implements AccountService
type accountService struct {
	repo   repository.OwnAccountRepository
	logger *zap.Logger
}

// NewAccountService creates a new account service. A nil repository disables
// the registry operations, which then fail with ErrRegistryUnavailable.
func NewAccountService(repo repository.OwnAccountRepository, logger *zap.Logger) AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &accountService{repo: repo, logger: logger}
}

// Classify classifies an account. With a customer id the customer's registered
// accounts are consulted for the own-account rule.
func (s *accountService) Classify(ctx context.Context, customerID, account string) (*models.Classification, error) {
	validator := accounts.NewRuleValidator()

	if customerID != "" {
		owned, err := s.ListOwnAccounts(ctx, customerID)
		if err != nil {
			return nil, err
		}
		numbers := make([]string, 0, len(owned))
		for _, ownAccount := range owned {
			numbers = append(numbers, ownAccount.AccountNumber)
		}
		validator = accounts.NewRuleValidator(numbers...)
	}

	classification := accounts.NewClassifier(validator).Classify(account)
	s.logger.Debug("classified account",
		zap.String("account", classification.Account),
		zap.String("type", string(classification.Type)),
		zap.String("subject", string(classification.Subject)),
	)
	return &classification, nil
}

func (s *accountService) Affiliation(account string) models.Affiliation {
	return accounts.ClassifyAffiliation(account)
}

// Format renders the hyphenated and masked forms of a valid account
func (s *accountService) Format(account string) (*models.FormattedAccount, error) {
	normalized, err := accounts.Validate(account)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	hyphenated, err := accounts.Hyphenate(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	masked, err := accounts.Mask(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &models.FormattedAccount{Account: normalized, Hyphenated: hyphenated, Masked: masked}, nil
}

// ListOwnAccounts returns the accounts registered to a customer
func (s *accountService) ListOwnAccounts(ctx context.Context, customerID string) ([]models.OwnAccount, error) {
	if s.repo == nil {
		return nil, ErrRegistryUnavailable
	}
	if !customerIDRegex.MatchString(customerID) {
		return nil, fmt.Errorf("%w: customer id %q", ErrInvalidInput, customerID)
	}

	owned, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("listing own accounts failed", zap.String("customer_id", customerID), zap.Error(err))
		return nil, err
	}
	return owned, nil
}

// RegisterOwnAccount validates and stores an own account, assigning its id
func (s *accountService) RegisterOwnAccount(ctx context.Context, account *models.OwnAccount) error {
	if s.repo == nil {
		return ErrRegistryUnavailable
	}
	if err := prepareOwnAccount(account); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		s.logger.Error("registering own account failed", zap.String("customer_id", account.CustomerID), zap.Error(err))
		return err
	}

	s.logger.Info("registered own account", zap.String("customer_id", account.CustomerID), zap.String("id", account.ID))
	return nil
}

// RemoveOwnAccount deletes an account from a customer's registry
func (s *accountService) RemoveOwnAccount(ctx context.Context, customerID, account string) error {
	if s.repo == nil {
		return ErrRegistryUnavailable
	}
	if !customerIDRegex.MatchString(customerID) {
		return fmt.Errorf("%w: customer id %q", ErrInvalidInput, customerID)
	}
	normalized, err := accounts.Validate(account)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Delete(ctx, customerID, normalized); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ImportOwnAccounts stores parsed accounts in bulk. Accounts already in the
// registry, or repeated within the input, are skipped and counted as such.
func (s *accountService) ImportOwnAccounts(ctx context.Context, ownAccounts []models.OwnAccount) (*models.ImportSummary, error) {
	if s.repo == nil {
		return nil, ErrRegistryUnavailable
	}

	summary := &models.ImportSummary{}
	seen := make(map[string]struct{}, len(ownAccounts))
	batch := make([]*models.OwnAccount, 0, len(ownAccounts))
	for i := range ownAccounts {
		account := &ownAccounts[i]
		if err := prepareOwnAccount(account); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}

		key := account.CustomerID + "/" + account.AccountNumber
		if _, ok := seen[key]; ok {
			summary.Skipped++
			continue
		}
		seen[key] = struct{}{}

		registered, err := s.isRegistered(ctx, account.CustomerID, account.AccountNumber)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if registered {
			s.logger.Debug("skipping registered own account",
				zap.String("customer_id", account.CustomerID),
				zap.String("account", account.AccountNumber),
			)
			summary.Skipped++
			continue
		}
		batch = append(batch, account)
	}

	if len(batch) > 0 {
		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
	}
	summary.Imported = len(batch)
	s.logger.Info("imported own accounts", zap.Int("imported", summary.Imported), zap.Int("skipped", summary.Skipped))
	return summary, nil
}

func (s *accountService) isRegistered(ctx context.Context, customerID, accountNumber string) (bool, error) {
	_, err := s.repo.Get(ctx, customerID, accountNumber)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func prepareOwnAccount(account *models.OwnAccount) error {
	if account == nil {
		return ErrInvalidInput
	}
	if !customerIDRegex.MatchString(account.CustomerID) {
		return fmt.Errorf("%w: customer id %q", ErrInvalidInput, account.CustomerID)
	}
	normalized, err := accounts.Validate(account.AccountNumber)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	account.AccountNumber = normalized
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	return nil
}
