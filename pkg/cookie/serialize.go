package cookie

import (
	"strings"

	"github.com/biscuitlabs/toughcookie/pkg/date"
)

// CookieString renders the Cookie-header fragment: "key=value", or just
// the value for keyless cookies.
func (c *Cookie) CookieString() string {
	if c.Key != "" {
		return c.Key + "=" + c.Value
	}
	return c.Value
}

// String renders the full Set-Cookie form: the cookie-pair followed by the
// attributes that are set, in RFC order. An infinite Expires or Max-Age is
// not emitted (it carries no information on the wire); the
// negative-infinity Max-Age sentinel is emitted literally. Domain is
// suppressed on host-only cookies, and SameSite=None stays implicit.
func (c *Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.CookieString())

	if t, ok := c.Expires.Value(); ok {
		b.WriteString("; Expires=")
		b.WriteString(date.Format(t))
	}
	if c.MaxAge.IsSet() && !c.MaxAge.IsInfinite() {
		b.WriteString("; Max-Age=")
		b.WriteString(c.MaxAge.String())
	}
	if c.Domain != "" && (c.HostOnly == nil || !*c.HostOnly) {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}
	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	if c.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if c.SameSite != "" && c.SameSite != SameSiteNone {
		b.WriteString("; SameSite=")
		switch ParseSameSite(string(c.SameSite)) {
		case SameSiteStrict:
			b.WriteString("Strict")
		case SameSiteLax:
			b.WriteString("Lax")
		default:
			// Unrecognized values pass through as stored.
			b.WriteString(string(c.SameSite))
		}
	}
	for _, ext := range c.Extensions {
		b.WriteString("; ")
		b.WriteString(ext)
	}

	return b.String()
}
