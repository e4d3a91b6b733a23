package sanitizer

import "golang.org/x/text/unicode/norm"

// NFC converts s to Unicode Normalization Form C so that visually identical
// input (e.g. "é" typed as one or two code points) compares equal.
func NFC(s string) string {
	return norm.NFC.String(s)
}
