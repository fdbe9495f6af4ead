package slysheets

import (
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ColumnLetters converts a zero-based column index to its A1 notation
// letters. The encoding is bijective base 26 with no zero digit:
// 0 is "A", 25 is "Z", 26 is "AA", 701 is "ZZ", 702 is "AAA".
func ColumnLetters(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return colLetters(index), nil
}

// ColumnIndex converts A1 notation column letters to the zero-based
// column index. Case-insensitive; the inverse of ColumnLetters.
func ColumnIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("%w: empty column name", ErrInvalidColumn)
	}
	letters = strings.ToUpper(letters)
	index := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, letters)
		}
		index = index*26 + int(c-'A') + 1
	}
	return index - 1, nil
}
