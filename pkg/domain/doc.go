// Package domain canonicalizes cookie Domain attributes and checks them
// against the public suffix list.
//
// Canonical lower-cases a domain, strips a single leading dot and IPv6
// brackets, and converts internationalized names to their ASCII (punycode)
// form, producing the representation RFC 6265 uses for domain comparison:
//
//	import "github.com/biscuitlabs/toughcookie/pkg/domain"
//
//	domain.Canonical(".EXAMPLE.com") // "example.com"
//	domain.Canonical("bücher.de")    // "xn--bcher-kva.de"
//
// Registrable resolves the registrable domain (eTLD+1) via
// golang.org/x/net/publicsuffix. It fails with [ErrPublicSuffix] when the
// input is itself a public suffix, which is how overly broad Domain
// attributes such as Domain=com are rejected:
//
//	if _, err := domain.Registrable("com"); err != nil {
//		// cookie must not be set for a bare public suffix
//	}
package domain
