// Package cookie models a single RFC 6265 Set-Cookie value: parsing the
// wire form, serializing back to it, round-tripping through JSON, and
// computing expiry. It is the value-object half of cookie handling; jars,
// domain matching against request URLs, and transport live elsewhere.
//
// # Parsing
//
// Parse reads a Set-Cookie header value. Malformed attributes inside an
// otherwise valid cookie are ignored, per the RFC; only a broken
// cookie-pair fails the parse:
//
//	import "github.com/biscuitlabs/toughcookie/pkg/cookie"
//
//	c, err := cookie.Parse("session=abc123; Domain=example.com; Path=/; Secure")
//	if err != nil {
//		// not a cookie
//	}
//	c.Domain // "example.com"
//	c.Secure // true
//
// Loose mode additionally accepts keyless pairs:
//
//	c, _ = cookie.Parse("=value", cookie.Loose())
//	c.Key   // ""
//	c.Value // "value"
//
// # Construction
//
// New applies functional options over RFC defaults and stamps the cookie
// with a creation time and a process-wide creation index:
//
//	c := cookie.New(
//		cookie.WithKey("session"),
//		cookie.WithValue("abc123"),
//		cookie.WithMaxAge(cookie.MaxAgeOf(3600)),
//	)
//
// # Serialization
//
// String emits the Set-Cookie form and CookieString the Cookie-header
// fragment. MarshalJSON/FromJSON round-trip the cookie through a fixed
// whitelist of fields for persistence by an external store; Clone is the
// same round-trip used as a deep copy.
//
// # Expiry
//
// TTL, ExpiryTime, and IsPersistent implement the RFC precedence rules: a
// finite Max-Age beats Expires, and the "Infinity" sentinel marks cookies
// that never expire. Unbounded values are carried by the [Time] and
// [MaxAge] sum types rather than by magic numbers.
//
// # Errors
//
// Expected malformed input is reported through sentinel errors:
//   - [ErrEmptyInput]: nothing to parse
//   - [ErrMalformedPair]: cookie-pair violates RFC 6265
//   - [ErrMalformedJSON]: FromJSON input is not valid JSON
package cookie
