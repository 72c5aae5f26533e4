package cookie

import (
	"sync/atomic"
	"time"
)

// creationCounter is the process-wide source of creation indexes. It is
// incremented exactly once per constructed Cookie, so indexes are unique
// and strictly increasing even under concurrent construction.
var creationCounter atomic.Uint64

// Cookie models a single RFC 6265 Set-Cookie value. Key and Value come
// from the cookie-pair; the remaining fields mirror the cookie attributes
// plus the bookkeeping slots an external jar maintains (HostOnly,
// PathIsDefault, LastAccessed).
//
// Empty strings mean "attribute not set" for Domain, Path, and SameSite.
// An unset Path signals that the jar must derive the default-path from the
// request URL. HostOnly and PathIsDefault are tri-state: a nil pointer
// means the jar has not decided yet.
type Cookie struct {
	Key   string
	Value string

	// Expires defaults to the infinity sentinel: a cookie without an
	// explicit expiry never expires on its own.
	Expires Time
	MaxAge  MaxAge

	Domain string
	Path   string

	Secure   bool
	HttpOnly bool

	// Extensions holds unrecognized attributes verbatim, in the order
	// they appeared on the wire.
	Extensions []string

	Creation      Time
	HostOnly      *bool
	PathIsDefault *bool
	LastAccessed  Time
	SameSite      SameSite

	creationIndex uint64
}

// New constructs a Cookie with RFC defaults, applies the given options,
// and assigns a fresh creation index. Creation defaults to the current
// time unless WithCreation supplied one.
func New(opts ...Option) *Cookie {
	c := &Cookie{
		Expires:       InfiniteTime(),
		creationIndex: creationCounter.Add(1),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.Creation.IsSet() {
		c.Creation = TimeOf(time.Now())
	}
	return c
}

// CreationIndex returns the process-wide sequence number assigned at
// construction. Jars use it to break ties between cookies that share a
// creation timestamp. It is never serialized and cannot be set.
func (c *Cookie) CreationIndex() uint64 {
	return c.creationIndex
}

// Clone deep-copies the cookie through its JSON representation. The copy
// gets a fresh creation index, and anything outside the serializable
// field set is deliberately dropped.
func (c *Cookie) Clone() *Cookie {
	data, err := c.MarshalJSON()
	if err != nil {
		// The marshaller only writes closed, marshalable shapes.
		panic("cookie: clone: " + err.Error())
	}
	copied, err := FromJSON(data)
	if err != nil {
		panic("cookie: clone: " + err.Error())
	}
	return copied
}
