package reader

import (
	"io"
)

// OwnAccountRecord is one raw row of an own-account bulk file
type OwnAccountRecord struct {
	Index         int
	CustomerID    string // CUSTOMER ID
	AccountNumber string // ACCOUNT NUMBER
	Alias         string // ALIAS
}

// OwnAccountsReader reads raw own-account records from a bulk source
type OwnAccountsReader interface {
	LoadOwnAccounts(reader io.Reader) ([]OwnAccountRecord, error)
}
