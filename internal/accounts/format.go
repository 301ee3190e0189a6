package accounts

import "strings"

// hyphenGroups is the display grouping for each account length
var hyphenGroups = map[int][]int{
	9:  {3, 2, 4},
	10: {3, 2, 5},
	11: {3, 2, 6},
	12: {3, 3, 6},
	13: {3, 4, 4, 2},
	14: {6, 2, 6},
	15: {3, 4, 4, 4},
	16: {4, 4, 4, 4},
}

// Hyphenate renders an account number in its display form, e.g. 301-1234-5678-91
func Hyphenate(account string) (string, error) {
	groups, err := split(account)
	if err != nil {
		return "", err
	}
	return strings.Join(groups, "-"), nil
}

// Mask renders the display form with the second to last group hidden
func Mask(account string) (string, error) {
	groups, err := split(account)
	if err != nil {
		return "", err
	}
	hidden := len(groups) - 2
	groups[hidden] = strings.Repeat("*", len(groups[hidden]))
	return strings.Join(groups, "-"), nil
}

func split(account string) ([]string, error) {
	normalized, err := Validate(account)
	if err != nil {
		return nil, err
	}

	sizes := hyphenGroups[len(normalized)]
	groups := make([]string, 0, len(sizes))
	offset := 0
	for _, size := range sizes {
		groups = append(groups, normalized[offset:offset+size])
		offset += size
	}
	return groups, nil
}
