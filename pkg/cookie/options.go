package cookie

// Option configures a Cookie during construction with New.
type Option func(*Cookie)

// WithKey sets the cookie name.
func WithKey(key string) Option {
	return func(c *Cookie) { c.Key = key }
}

// WithValue sets the cookie value.
func WithValue(value string) Option {
	return func(c *Cookie) { c.Value = value }
}

// WithExpires sets the Expires attribute.
func WithExpires(t Time) Option {
	return func(c *Cookie) { c.Expires = t }
}

// WithMaxAge sets the Max-Age attribute.
func WithMaxAge(m MaxAge) Option {
	return func(c *Cookie) { c.MaxAge = m }
}

// WithDomain sets the Domain attribute.
func WithDomain(domain string) Option {
	return func(c *Cookie) { c.Domain = domain }
}

// WithPath sets the Path attribute.
func WithPath(path string) Option {
	return func(c *Cookie) { c.Path = path }
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(c *Cookie) { c.Secure = secure }
}

// WithHTTPOnly sets the HttpOnly flag.
func WithHTTPOnly(httpOnly bool) Option {
	return func(c *Cookie) { c.HttpOnly = httpOnly }
}

// WithExtensions sets the unrecognized-attribute list.
func WithExtensions(exts ...string) Option {
	return func(c *Cookie) { c.Extensions = exts }
}

// WithCreation overrides the creation timestamp, which otherwise defaults
// to the construction time.
func WithCreation(t Time) Option {
	return func(c *Cookie) { c.Creation = t }
}

// WithHostOnly sets the host-only flag, normally owned by the jar.
func WithHostOnly(hostOnly bool) Option {
	return func(c *Cookie) { c.HostOnly = &hostOnly }
}

// WithPathIsDefault marks the Path as jar-derived rather than explicit.
func WithPathIsDefault(pathIsDefault bool) Option {
	return func(c *Cookie) { c.PathIsDefault = &pathIsDefault }
}

// WithLastAccessed sets the last-access timestamp, normally owned by the jar.
func WithLastAccessed(t Time) Option {
	return func(c *Cookie) { c.LastAccessed = t }
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(s SameSite) Option {
	return func(c *Cookie) { c.SameSite = s }
}
