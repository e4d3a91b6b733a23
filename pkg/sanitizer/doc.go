// Package sanitizer provides small string helpers for cleaning user input
// before it is validated or rendered.
//
// Helpers are plain func(string) string values so they can be chained with
// Apply or stored as reusable pipelines with Compose:
//
//	cleanName := sanitizer.Compose(
//	    sanitizer.StripHTML,
//	    sanitizer.NFC,
//	    sanitizer.SingleLine,
//	)
//
//	name := cleanName("  <b>Jane</b>\n Doe ") // "Jane Doe"
//
// HTML stripping is backed by bluemonday's strict policy and Unicode
// normalization by golang.org/x/text. None of the helpers returns an error;
// they always fall back to the input or an empty string. The package holds
// no mutable state and is safe for concurrent use.
package sanitizer
