package domain

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ErrPublicSuffix is returned when a domain has no registrable part,
// i.e. the domain is itself a public suffix.
var ErrPublicSuffix = errors.New("domain: no registrable domain")

// Canonical returns the canonical form of a cookie domain: trimmed, with a
// single leading dot and IPv6 brackets removed, punycoded when it contains
// non-ASCII characters, and lower-cased. An empty input yields "".
func Canonical(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return ""
	}
	d = strings.TrimPrefix(d, ".")
	if strings.HasPrefix(d, "[") && strings.HasSuffix(d, "]") {
		d = d[1 : len(d)-1]
	}
	if !isASCII(d) {
		if ascii, err := idna.ToASCII(d); err == nil {
			d = ascii
		}
	}
	return strings.ToLower(d)
}

// Registrable returns the registrable domain (eTLD+1) for d. It returns
// ErrPublicSuffix when d is itself a public suffix or malformed, so a
// cookie scoped to it would be readable across unrelated registrants.
func Registrable(d string) (string, error) {
	etldPlusOne, err := publicsuffix.EffectiveTLDPlusOne(d)
	if err != nil {
		return "", ErrPublicSuffix
	}
	return etldPlusOne, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
