package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	readers "github.com/zdziszkee/account-codes/internal/readers"
)

type CSVOwnAccountsReader struct {
}

var expectedHeaders = []string{"CUSTOMER ID", "ACCOUNT NUMBER", "ALIAS"}

// LoadOwnAccounts reads a CSV file with the header CUSTOMER ID,ACCOUNT NUMBER,ALIAS.
// An empty input yields no records.
func (c *CSVOwnAccountsReader) LoadOwnAccounts(reader io.Reader) ([]readers.OwnAccountRecord, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = len(expectedHeaders)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []readers.OwnAccountRecord{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	for i, col := range header {
		// Case-insensitive and space-trimmed comparison
		if strings.TrimSpace(strings.ToUpper(col)) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header: expected '%s' at index %d, got '%s'", expectedHeaders[i], i, col)
		}
	}

	records := []readers.OwnAccountRecord{}
	rowNum := 1
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		records = append(records, readers.OwnAccountRecord{
			Index:         rowNum,
			CustomerID:    strings.TrimSpace(row[0]),
			AccountNumber: strings.TrimSpace(row[1]),
			Alias:         strings.TrimSpace(row[2]),
		})
		rowNum++
	}

	return records, nil
}
