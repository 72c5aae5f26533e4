package cookie

import (
	"math"
	"time"
)

// TTLForever is the TTL of a cookie that never expires.
const TTLForever = time.Duration(math.MaxInt64)

// maxSeconds is the largest Max-Age that still converts to a Duration
// without overflowing.
const maxSeconds = int64(TTLForever / time.Second)

// TTL returns the remaining lifetime relative to now, or TTLForever for a
// cookie that never expires. A zero now means the current time. A finite
// Max-Age always wins over Expires; non-positive values expire the cookie
// immediately. Without either attribute the TTL is zero.
func (c *Cookie) TTL(now time.Time) time.Duration {
	if c.MaxAge.IsSet() {
		switch {
		case c.MaxAge.IsInfinite():
			return TTLForever
		case c.MaxAge.IsNegInfinite():
			return 0
		}
		secs, _ := c.MaxAge.Seconds()
		if secs <= 0 {
			return 0
		}
		if secs > maxSeconds {
			return TTLForever
		}
		return time.Duration(secs) * time.Second
	}

	if c.Expires.IsInfinite() {
		return TTLForever
	}
	if t, ok := c.Expires.Value(); ok {
		if now.IsZero() {
			now = time.Now()
		}
		return t.Sub(now)
	}
	return 0
}

// ExpiryTime computes the absolute expiry. With a Max-Age set the result
// is relative to now, falling back to LastAccessed and then the current
// time when now is zero; a non-positive or negative-infinite Max-Age
// yields the negative-infinity sentinel. Without a Max-Age the result
// mirrors Expires, and an unset Expires yields an unset Time (undefined
// expiry).
func (c *Cookie) ExpiryTime(now time.Time) Time {
	if c.MaxAge.IsSet() {
		relativeTo := TimeOf(now)
		if now.IsZero() {
			if c.LastAccessed.IsSet() {
				relativeTo = c.LastAccessed
			} else {
				relativeTo = TimeOf(time.Now())
			}
		}
		if relativeTo.IsInfinite() {
			return InfiniteTime()
		}

		switch {
		case c.MaxAge.IsInfinite():
			return InfiniteTime()
		case c.MaxAge.IsNegInfinite():
			return NegInfiniteTime()
		}
		secs, _ := c.MaxAge.Seconds()
		if secs <= 0 {
			return NegInfiniteTime()
		}
		if secs > maxSeconds {
			return InfiniteTime()
		}
		rel, _ := relativeTo.Value()
		return TimeOf(rel.Add(time.Duration(secs) * time.Second))
	}

	if c.Expires.IsInfinite() {
		return InfiniteTime()
	}
	if t, ok := c.Expires.Value(); ok {
		return TimeOf(t)
	}
	return Time{}
}

// IsPersistent reports whether the cookie carries an expiry of its own:
// any Max-Age, or any Expires other than the never-expires sentinel.
func (c *Cookie) IsPersistent() bool {
	return c.MaxAge.IsSet() || !c.Expires.IsInfinite()
}
