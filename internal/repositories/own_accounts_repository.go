package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zdziszkee/account-codes/internal/database"
	"github.com/zdziszkee/account-codes/internal/models"
)

var (
	ErrNotFound  = errors.New("own account not found")
	ErrDuplicate = errors.New("own account already registered")
)

const (
	batchSize = 100
	columns   = "id, customer_id, account_number, alias"
)

// OwnAccountRepository defines the data operations of the own-account registry
type OwnAccountRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]models.OwnAccount, error)
	Get(ctx context.Context, customerID, accountNumber string) (*models.OwnAccount, error)
	Create(ctx context.Context, account *models.OwnAccount) error
	CreateBatch(ctx context.Context, accounts []*models.OwnAccount) error
	Delete(ctx context.Context, customerID, accountNumber string) error
}

// SQLOwnAccountRepository implements OwnAccountRepository using Trino via database/sql
type SQLOwnAccountRepository struct {
	db     *sql.DB
	table  string
	logger *zap.Logger
}

// NewSQLOwnAccountRepository creates a repository bound to the configured registry table
func NewSQLOwnAccountRepository(db *database.Database, logger *zap.Logger) OwnAccountRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLOwnAccountRepository{
		db:     db.DB,
		table:  db.Config.QualifiedTable(),
		logger: logger,
	}
}

// CreateBatch inserts own accounts in chunks using parameterized queries
func (r *SQLOwnAccountRepository) CreateBatch(ctx context.Context, accounts []*models.OwnAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	totalRows := len(accounts)
	insertedRows := 0

	for i := 0; i < totalRows; i += batchSize {
		endIdx := min(i+batchSize, totalRows)
		batch := accounts[i:endIdx]

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", r.table, columns))
		placeholders := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*4)

		for _, account := range batch {
			placeholders = append(placeholders, "(?, ?, ?, ?)")
			args = append(args, account.ID, account.CustomerID, account.AccountNumber, account.Alias)
		}

		sb.WriteString(strings.Join(placeholders, ","))
		query := sb.String()

		r.logger.Debug("executing batch insert", zap.Int("rows", len(batch)), zap.String("table", r.table))
		start := time.Now()
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("trino batch insert failed for batch %d-%d: %w", i+1, endIdx, err)
		}
		rowsAffected, _ := result.RowsAffected()
		insertedRows += int(rowsAffected)
		r.logger.Debug("completed batch insert", zap.Int("rows", len(batch)), zap.Duration("elapsed", time.Since(start)))
	}

	r.logger.Info("loaded own accounts", zap.Int("rows", insertedRows))
	return nil
}

// Create registers a single own account
func (r *SQLOwnAccountRepository) Create(ctx context.Context, account *models.OwnAccount) error {
	if err := r.checkDuplicate(ctx, account.CustomerID, account.AccountNumber); err != nil {
		return err
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?)", r.table, columns)
	_, err := r.db.ExecContext(ctx, query, account.ID, account.CustomerID, account.AccountNumber, account.Alias)
	if err != nil {
		return fmt.Errorf("trino insert failed: %w", err)
	}
	return nil
}

// ListByCustomer returns every account registered to a customer, ordered by account number
func (r *SQLOwnAccountRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.OwnAccount, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE customer_id = ? ORDER BY account_number", columns, r.table)
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("trino query failed: %w", err)
	}
	defer rows.Close()

	var accounts []models.OwnAccount
	for rows.Next() {
		account, err := scanOwnAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("trino scan failed: %w", err)
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}

// Get returns one registered account of a customer
func (r *SQLOwnAccountRepository) Get(ctx context.Context, customerID, accountNumber string) (*models.OwnAccount, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE customer_id = ? AND account_number = ?", columns, r.table)
	account, err := scanOwnAccount(r.db.QueryRowContext(ctx, query, customerID, accountNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("trino query failed: %w", err)
	}
	return account, nil
}

// Delete removes an account from a customer's registry
func (r *SQLOwnAccountRepository) Delete(ctx context.Context, customerID, accountNumber string) error {
	if err := r.checkExists(ctx, customerID, accountNumber); err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE customer_id = ? AND account_number = ?", r.table)
	if _, err := r.db.ExecContext(ctx, query, customerID, accountNumber); err != nil {
		return fmt.Errorf("trino delete failed: %w", err)
	}
	return nil
}

// Helper methods

func (r *SQLOwnAccountRepository) exists(ctx context.Context, customerID, accountNumber string) (bool, error) {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE customer_id = ? AND account_number = ? LIMIT 1", r.table)
	var found int
	err := r.db.QueryRowContext(ctx, query, customerID, accountNumber).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SQLOwnAccountRepository) checkDuplicate(ctx context.Context, customerID, accountNumber string) error {
	found, err := r.exists(ctx, customerID, accountNumber)
	if err != nil {
		return fmt.Errorf("trino check duplicate failed: %w", err)
	}
	if found {
		return ErrDuplicate
	}
	return nil
}

func (r *SQLOwnAccountRepository) checkExists(ctx context.Context, customerID, accountNumber string) error {
	found, err := r.exists(ctx, customerID, accountNumber)
	if err != nil {
		return fmt.Errorf("trino check exists failed: %w", err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func scanOwnAccount(scanner interface {
	Scan(dest ...any) error
}) (*models.OwnAccount, error) {
	var account models.OwnAccount
	var alias sql.NullString

	if err := scanner.Scan(&account.ID, &account.CustomerID, &account.AccountNumber, &alias); err != nil {
		return nil, err
	}
	account.Alias = alias.String

	return &account, nil
}
