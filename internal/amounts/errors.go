package amounts

import "errors"

var (
	ErrInvalidAmountFormat = errors.New("invalid amount format")
	ErrRangeExceeded       = errors.New("amount exceeds the 조 tier")
	ErrInvalidUnit         = errors.New("invalid amount unit")
	ErrInvalidSeparator    = errors.New("invalid group separator")
)

const (
	// UnknownAmount is the value upstream systems send when the amount is not known
	UnknownAmount     = "888888888888"
	UnknownAmountMark = "?"

	// RangeExceededPhrase is returned together with ErrRangeExceeded
	RangeExceededPhrase = "범위 초과"
)
