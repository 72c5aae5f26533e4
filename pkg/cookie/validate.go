package cookie

import (
	"strings"

	"github.com/biscuitlabs/toughcookie/pkg/domain"
)

// Validate reports whether the cookie complies with RFC 6265 semantics:
// a non-empty value of cookie-octets, a representable expiry, a positive
// Max-Age, a clean Path character set, and a Domain that is neither
// dot-terminated nor itself a public suffix. It answers yes or no; it
// never explains.
func (c *Cookie) Validate() bool {
	if c.Value == "" || !isCookieOctets(c.Value) {
		return false
	}
	if !c.Expires.IsSet() {
		return false
	}
	if c.MaxAge.IsSet() && !c.MaxAge.IsInfinite() {
		if c.MaxAge.IsNegInfinite() {
			return false
		}
		if secs, _ := c.MaxAge.Seconds(); secs <= 0 {
			return false
		}
	}
	if c.Path != "" && !isPathValue(c.Path) {
		return false
	}
	if cdomain := domain.Canonical(c.Domain); cdomain != "" {
		if strings.HasSuffix(cdomain, ".") {
			return false
		}
		if _, err := domain.Registrable(cdomain); err != nil {
			return false
		}
	}
	return true
}

// isCookieOctets reports whether s consists solely of cookie-octets:
// %x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E. This excludes controls,
// whitespace, and the DQUOTE, comma, semicolon, and backslash separators.
func isCookieOctets(s string) bool {
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == 0x21:
		case b >= 0x23 && b <= 0x2b:
		case b >= 0x2d && b <= 0x3a:
		case b >= 0x3c && b <= 0x5b:
		case b >= 0x5d && b <= 0x7e:
		default:
			return false
		}
	}
	return true
}

// isPathValue reports whether s consists solely of path-value characters:
// any printable ASCII except ";".
func isPathValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7e || b == ';' {
			return false
		}
	}
	return true
}
