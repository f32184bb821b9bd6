package handlers

import (
	"strings"
	"time"
	"unicode"
)

// formatDate renders t in the en-GB long form, e.g. "2 January 2024".
func formatDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// formatPhone groups an 11-digit UK number starting with 0 as
// "0800 123 4567"; anything else is returned unchanged.
func formatPhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if len(digits) == 11 && digits[0] == '0' {
		return digits[:4] + " " + digits[4:7] + " " + digits[7:]
	}
	return phone
}
