package pages

import (
	"regexp"
	"strings"
)

var (
	nonDigits  = regexp.MustCompile(`\D`)
	upperRuns  = regexp.MustCompile(`[A-Z]+`)
	titleWords = regexp.MustCompile(`[A-Z][a-z]+`)
	upperChar  = regexp.MustCompile(`[A-Z]`)
)

// FormatPhoneNumber renders a stored phone number for display. Ten digits
// without a country code are treated as Indian numbers; +1 numbers use the
// North American grouping. Anything shorter is returned unchanged.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return "N/A"
	}
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) < 10 {
		return phone
	}
	local := digits[len(digits)-10:]
	code := "+91"
	if len(digits) > 10 {
		code = "+" + digits[:len(digits)-10]
	}
	switch code {
	case "+91":
		return code + " " + local[:5] + " " + local[5:]
	case "+1":
		return code + " (" + local[:3] + ") " + local[3:6] + "-" + local[6:]
	default:
		return code + " " + local
	}
}

// CamelCaseToNormalText turns "ageRange" into "Age Range".
func CamelCaseToNormalText(s string) string {
	if s == "" {
		return s
	}
	spaced := strings.TrimSpace(upperChar.ReplaceAllString(s, " $0"))
	words := strings.Split(spaced, " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// FormatSuffix turns upper-case suffixes into capitalised words, e.g.
// "FLEXIBLE" becomes "Flexible" and "workFROMHOME" becomes "work Fromhome".
func FormatSuffix(s string) string {
	out := upperRuns.ReplaceAllStringFunc(s, func(run string) string {
		return run[:1] + strings.ToLower(run[1:])
	})
	out = titleWords.ReplaceAllString(out, " $0")
	return strings.TrimSpace(out)
}
