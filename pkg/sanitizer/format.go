package sanitizer

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the domain part.
// The local part is left untouched: it is case-sensitive per RFC 5321 and
// rewriting it could turn a malformed address into a well-formed one.
// Inputs without exactly one "@" are only trimmed.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	return local + "@" + strings.ToLower(domain)
}

// MaskEmail preserves full domain for user recognition while hiding personal info.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := []rune(parts[0])
	domain := parts[1]

	if len(local) == 0 {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}
