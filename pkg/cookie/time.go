package cookie

import (
	"encoding/json"
	"time"
)

// isoMillis is the JSON layout for concrete timestamps (ISO 8601 with
// millisecond precision, always UTC).
const isoMillis = "2006-01-02T15:04:05.000Z"

type timeKind uint8

const (
	timeUnset timeKind = iota
	timeConcrete
	timePosInf
	timeNegInf
)

// Time is a cookie timestamp: unset, a concrete instant, or one of the
// two infinity sentinels. Cookie fields only ever hold the unset,
// concrete, and positive-infinite cases; the negative case exists for
// [Cookie.ExpiryTime] results, where a non-positive Max-Age pushes the
// expiry infinitely far into the past. The zero value is unset.
type Time struct {
	t    time.Time
	kind timeKind
}

// TimeOf returns a concrete Time.
func TimeOf(t time.Time) Time { return Time{t: t, kind: timeConcrete} }

// InfiniteTime returns the positive-infinity sentinel, the timestamp of a
// cookie that never expires.
func InfiniteTime() Time { return Time{kind: timePosInf} }

// NegInfiniteTime returns the negative-infinity sentinel.
func NegInfiniteTime() Time { return Time{kind: timeNegInf} }

// IsSet reports whether t holds anything at all.
func (t Time) IsSet() bool { return t.kind != timeUnset }

// IsInfinite reports whether t is the positive-infinity sentinel.
func (t Time) IsInfinite() bool { return t.kind == timePosInf }

// IsNegInfinite reports whether t is the negative-infinity sentinel.
func (t Time) IsNegInfinite() bool { return t.kind == timeNegInf }

// Value returns the concrete instant and true, or the zero time and false
// when t is unset or a sentinel.
func (t Time) Value() (time.Time, bool) {
	if t.kind != timeConcrete {
		return time.Time{}, false
	}
	return t.t, true
}

// Equal reports whether two Times hold the same case and, for concrete
// values, the same instant.
func (t Time) Equal(o Time) bool {
	if t.kind != o.kind {
		return false
	}
	if t.kind != timeConcrete {
		return true
	}
	return t.t.Equal(o.t)
}

// String returns "Infinity", "-Infinity", the ISO 8601 form of a concrete
// instant, or "" when unset.
func (t Time) String() string {
	switch t.kind {
	case timePosInf:
		return "Infinity"
	case timeNegInf:
		return "-Infinity"
	case timeConcrete:
		return t.t.UTC().Format(isoMillis)
	default:
		return ""
	}
}

// MarshalJSON encodes concrete instants as ISO 8601 strings and the
// infinity sentinels as the literal strings "Infinity" and "-Infinity".
// An unset Time encodes as null.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.kind == timeUnset {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON. Unparseable
// date strings leave the Time unset; timestamps are never allowed to hold
// a garbage value.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*t = Time{}
		return nil
	}
	switch *s {
	case "Infinity":
		*t = InfiniteTime()
	case "-Infinity":
		*t = NegInfiniteTime()
	default:
		parsed, err := time.Parse(time.RFC3339Nano, *s)
		if err != nil {
			*t = Time{}
			return nil
		}
		*t = TimeOf(parsed)
	}
	return nil
}
