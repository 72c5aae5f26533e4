package cookie

import "strings"

// SameSite is the value of the SameSite attribute. The empty string means
// the attribute is not set.
type SameSite string

// Recognized SameSite values (RFC 6265bis).
const (
	SameSiteStrict SameSite = "strict"
	SameSiteLax    SameSite = "lax"
	SameSiteNone   SameSite = "none"
)

// ParseSameSite matches s case-insensitively against the recognized
// SameSite values. Anything else, including the empty string, yields the
// unset value.
func ParseSameSite(s string) SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return SameSiteStrict
	case "lax":
		return SameSiteLax
	case "none":
		return SameSiteNone
	default:
		return ""
	}
}
