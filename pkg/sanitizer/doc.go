// Package sanitizer holds the small string transforms used to sanitize form
// control values before they are validated: line-break stripping, ASCII
// whitespace trimming, newline normalisation and comma-list handling.
//
// The helpers are stateless and can be chained with Apply or stored as a
// pipeline with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripLineBreaks,
//	    sanitizer.Trim,
//	)
//	v := clean(" https://example.com\n")
//
// Trimming follows the HTML notion of ASCII whitespace, so non-breaking
// spaces and other Unicode space characters are preserved.
package sanitizer
