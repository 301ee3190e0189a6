package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zdziszkee/account-codes/internal/amounts"
	"github.com/zdziszkee/account-codes/internal/dates"
	models "github.com/zdziszkee/account-codes/internal/models"
)

// FormatService renders amounts and dates for display
type FormatService interface {
	Group(amount string, strict bool) (string, error)
	GroupDecimal(amount decimal.Decimal, places int32) (string, error)
	Words(amount, unit string) (*models.AmountWords, error)
	Date(date string) (*models.FormattedDate, error)
}

// FormatOptions are the display defaults of a FormatService
type FormatOptions struct {
	Separator   string
	Strict      bool
	DefaultUnit models.AmountUnit
}

type formatService struct {
	options FormatOptions
	logger  *zap.Logger
}

func NewFormatService(options FormatOptions, logger *zap.Logger) FormatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if options.DefaultUnit == "" {
		options.DefaultUnit = models.UnitWon
	}
	return &formatService{options: options, logger: logger}
}

func (s *formatService) formatter(strict bool) *amounts.Formatter {
	return &amounts.Formatter{Separator: s.options.Separator, Strict: strict || s.options.Strict}
}

// Group inserts thousands separators. strict rejects leading zeros even when
// the service default is lenient.
func (s *formatService) Group(amount string, strict bool) (string, error) {
	grouped, err := s.formatter(strict).GroupThousands(amount)
	if err != nil {
		return "", mapAmountError(err)
	}
	return grouped, nil
}

func (s *formatService) GroupDecimal(amount decimal.Decimal, places int32) (string, error) {
	if places < 0 {
		return "", fmt.Errorf("%w: negative places %d", ErrInvalidInput, places)
	}
	grouped, err := s.formatter(false).GroupDecimal(amount, places)
	if err != nil {
		return "", mapAmountError(err)
	}
	return grouped, nil
}

// Words spells the amount out in Korean. An empty unit uses the configured
// default. On overflow the range-exceeded phrase is returned with ErrRangeExceeded.
func (s *formatService) Words(amount, unit string) (*models.AmountWords, error) {
	amountUnit := s.options.DefaultUnit
	if unit != "" {
		parsed, err := amounts.ParseUnit(unit)
		if err != nil {
			return nil, mapAmountError(err)
		}
		amountUnit = parsed
	}

	words, err := s.formatter(false).ToKoreanWords(amount, amountUnit)
	if err != nil && !errors.Is(err, amounts.ErrRangeExceeded) {
		return nil, mapAmountError(err)
	}
	if err != nil {
		s.logger.Warn("amount out of range", zap.String("amount", amount))
	}
	return &models.AmountWords{Amount: amount, Unit: amountUnit, Words: words}, err
}

func (s *formatService) Date(date string) (*models.FormattedDate, error) {
	dotted, err := dates.Dotted(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	korean, err := dates.Korean(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &models.FormattedDate{Date: date, Dotted: dotted, Korean: korean}, nil
}

func mapAmountError(err error) error {
	switch {
	case errors.Is(err, amounts.ErrRangeExceeded):
		return err
	case errors.Is(err, amounts.ErrInvalidAmountFormat), errors.Is(err, amounts.ErrInvalidUnit):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return err
	}
}
