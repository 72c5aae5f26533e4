package cookie

import (
	"encoding/json"
	"math"
	"strconv"
)

type maxAgeKind uint8

const (
	maxAgeUnset maxAgeKind = iota
	maxAgeFinite
	maxAgePosInf
	maxAgeNegInf
)

// MaxAge is the Max-Age attribute: unset, a finite number of seconds, or
// one of the two infinity sentinels. Formats that cannot represent
// infinities (wire text, JSON numbers) carry the sentinels as the literal
// strings "Infinity" and "-Infinity". The zero value is unset.
type MaxAge struct {
	secs int64
	kind maxAgeKind
}

// MaxAgeOf returns a finite Max-Age of n seconds. Negative values are
// kept as-is; RFC 6265 treats them as "expire immediately".
func MaxAgeOf(n int64) MaxAge { return MaxAge{secs: n, kind: maxAgeFinite} }

// InfiniteMaxAge returns the positive-infinity sentinel.
func InfiniteMaxAge() MaxAge { return MaxAge{kind: maxAgePosInf} }

// NegInfiniteMaxAge returns the negative-infinity sentinel.
func NegInfiniteMaxAge() MaxAge { return MaxAge{kind: maxAgeNegInf} }

// IsSet reports whether a Max-Age is present at all.
func (m MaxAge) IsSet() bool { return m.kind != maxAgeUnset }

// IsInfinite reports whether m is the positive-infinity sentinel.
func (m MaxAge) IsInfinite() bool { return m.kind == maxAgePosInf }

// IsNegInfinite reports whether m is the negative-infinity sentinel.
func (m MaxAge) IsNegInfinite() bool { return m.kind == maxAgeNegInf }

// Seconds returns the finite value and true, or 0 and false when m is
// unset or a sentinel.
func (m MaxAge) Seconds() (int64, bool) {
	if m.kind != maxAgeFinite {
		return 0, false
	}
	return m.secs, true
}

// String returns the wire form: the decimal seconds, "Infinity",
// "-Infinity", or "" when unset.
func (m MaxAge) String() string {
	switch m.kind {
	case maxAgeFinite:
		return strconv.FormatInt(m.secs, 10)
	case maxAgePosInf:
		return "Infinity"
	case maxAgeNegInf:
		return "-Infinity"
	default:
		return ""
	}
}

// MarshalJSON encodes finite values as numbers and the sentinels as the
// strings "Infinity" and "-Infinity". Unset encodes as null.
func (m MaxAge) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case maxAgeFinite:
		return []byte(strconv.FormatInt(m.secs, 10)), nil
	case maxAgePosInf, maxAgeNegInf:
		return json.Marshal(m.String())
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON. Values of
// any other shape leave the MaxAge unset.
func (m *MaxAge) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*m = MaxAge{}
	case string:
		switch v {
		case "Infinity":
			*m = InfiniteMaxAge()
		case "-Infinity":
			*m = NegInfiniteMaxAge()
		default:
			*m = MaxAge{}
		}
	case float64:
		// Fractional or out-of-range numbers are shape mismatches, not
		// values to be truncated into something finite.
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			*m = MaxAge{}
			return nil
		}
		*m = MaxAgeOf(int64(v))
	default:
		*m = MaxAge{}
	}
	return nil
}
