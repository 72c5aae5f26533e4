// Package date parses and formats HTTP cookie dates.
//
// Parse implements the RFC 6265 section 5.1.1 cookie-date algorithm, which
// is deliberately more forgiving than the IMF-fixdate grammar: tokens may
// appear in any order, two-digit years are widened, and trailing garbage
// after numeric fields is tolerated. Format emits the canonical IMF-fixdate
// form used by the Expires attribute.
//
// # Usage
//
//	import "github.com/biscuitlabs/toughcookie/pkg/date"
//
//	t, err := date.Parse("Tue, 15 Jan 2013 21:47:38 GMT")
//	if err != nil {
//		// not a cookie date
//	}
//
//	s := date.Format(t)
//	// Output: "Tue, 15 Jan 2013 21:47:38 GMT"
//
// Parse returns [ErrInvalidDate] for anything the cookie-date grammar cannot
// make sense of; callers that follow RFC 6265 ignore the Expires attribute
// in that case rather than rejecting the whole cookie.
package date
