package utils

import "unicode/utf8"

// MaxCellChars is the largest number of characters a spreadsheet cell accepts.
const MaxCellChars = 32767

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// TruncateString truncates str to at most maxLength runes, the last three being "...".
func (s *StringHelper) TruncateString(str string, maxLength int) string {
	if utf8.RuneCountInString(str) <= maxLength {
		return str
	}

	if maxLength <= 3 {
		return string([]rune(str)[:maxLength])
	}

	return string([]rune(str)[:maxLength-3]) + "..."
}

// IsDigits reports whether str is non-empty and made only of ASCII digits.
func (s *StringHelper) IsDigits(str string) bool {
	if str == "" {
		return false
	}

	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}

	return true
}
