package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// Accepts 20240102, 2024-01-02 and 2024.01.02
var dateRegex = regexp.MustCompile(`^(\d{4})[-.]?(\d{2})[-.]?(\d{2})$`)

// Parse reads a portal date string into a calendar date
func Parse(value string) (time.Time, error) {
	match := dateRegex.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	// time.Parse rejects days that do not exist in the month
	t, err := time.Parse("20060102", match[1]+match[2]+match[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// Dotted renders a date as 2024.01.02
func Dotted(value string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return t.Format("2006.01.02"), nil
}

// Korean renders a date as 2024년 1월 2일
func Korean(value string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day()), nil
}
