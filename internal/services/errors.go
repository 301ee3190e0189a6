package service

import (
	"errors"

	"github.com/zdziszkee/account-codes/internal/amounts"
)

var (
	ErrNotFound            = errors.New("own account not found")
	ErrInvalidInput        = errors.New("invalid input provided")
	ErrAlreadyExists       = errors.New("own account already exists")
	ErrRegistryUnavailable = errors.New("own-account registry is not configured")
	ErrRangeExceeded       = amounts.ErrRangeExceeded
)
