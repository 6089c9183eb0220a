package mask

import "strings"

// Name - partially redacts a display name for shared listings.
// Tokens of one or two characters keep the first character, longer tokens
// keep the first two; the rest is replaced with '*'.
func Name(name string) string {
	if name == "" {
		return ""
	}
	tokens := strings.Split(name, " ")
	for i, token := range tokens {
		if token == "" {
			continue
		}
		if len(token) <= 2 {
			tokens[i] = token[:1] + "*"
		} else {
			tokens[i] = token[:2] + strings.Repeat("*", len(token)-2)
		}
	}
	return strings.Join(tokens, " ")
}

// Email - partially redacts an email address, preserving the TLD.
// Local part and domain label each keep up to two leading characters and are
// padded with '*' to their original length, at least one '*' each.
func Email(email string) string {
	if email == "" {
		return ""
	}
	at := strings.Index(email, "@")
	if at < 0 {
		return maskSegment(email)
	}
	local := email[:at]
	domain := email[at+1:]

	dot := strings.Index(domain, ".")
	if dot < 0 {
		return maskSegment(local) + "@" + maskSegment(domain)
	}
	label := domain[:dot]
	tld := domain[dot:]

	return maskSegment(local) + "@" + maskSegment(label) + tld
}

// maskSegment - pads a segment with '*' to its original length, keeping at
// most two leading characters visible. At least one '*' is always emitted,
// so a single-character segment grows to two characters.
func maskSegment(s string) string {
	if s == "" {
		return ""
	}
	masked := len(s) - 2
	if masked < 1 {
		masked = 1
	}
	visible := len(s) - masked
	if visible < 1 {
		visible = 1
	}
	return s[:visible] + strings.Repeat("*", masked)
}
