package phone

import "strings"

// Normalize canonicalizes a phone number for map-key comparison. All
// non-digit characters are stripped; an 11-digit number starting with
// "1" gains a "+", a 10-digit number gains "+1", anything else gets a
// bare "+" prefix (best effort for non-US numbers). Empty input yields
// an empty string. Both the roster lookup table and every inbound
// sender address must pass through here or lookups silently miss.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	switch {
	case len(digits) == 11 && digits[0] == '1':
		return "+" + digits
	case len(digits) == 10:
		return "+1" + digits
	default:
		return "+" + digits
	}
}
