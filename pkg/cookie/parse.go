package cookie

import (
	"strconv"
	"strings"

	"github.com/biscuitlabs/toughcookie/pkg/date"
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	loose bool
}

// Loose enables loose parsing: keyless pairs such as "=value" are accepted
// with an empty name instead of being rejected.
func Loose() ParseOption {
	return func(cfg *parseConfig) { cfg.loose = true }
}

// Parse reads a Set-Cookie header value into a Cookie. The cookie-pair
// before the first semicolon must be well formed; individually malformed
// attributes after it are ignored per RFC 6265 rather than failing the
// whole parse. Unrecognized attributes are collected verbatim in
// Extensions.
func Parse(raw string, opts ...ParseOption) (*Cookie, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	str := strings.TrimSpace(raw)
	if str == "" {
		return nil, ErrEmptyInput
	}

	pair := str
	firstSemi := strings.IndexByte(str, ';')
	if firstSemi >= 0 {
		pair = str[:firstSemi]
	}

	c, err := parsePair(pair, cfg.loose)
	if err != nil {
		return nil, err
	}
	if firstSemi < 0 {
		return c, nil
	}

	avs := strings.TrimSpace(str[firstSemi+1:])
	if avs == "" {
		return c, nil
	}

	// Attribute handling is last-value-wins for the known directives;
	// extensions accumulate instead.
	for _, av := range strings.Split(avs, ";") {
		av = strings.TrimSpace(av)
		if av == "" {
			continue
		}

		key := av
		value := ""
		hasValue := false
		if sep := strings.IndexByte(av, '='); sep >= 0 {
			key = av[:sep]
			value = av[sep+1:]
			hasValue = true
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if hasValue {
			value = strings.TrimSpace(value)
		}

		switch key {
		case "expires":
			// An unparseable date is ignored; the cookie keeps its
			// previous expiry.
			if value != "" {
				if exp, err := date.Parse(value); err == nil {
					c.Expires = TimeOf(exp)
				}
			}
		case "max-age":
			if value != "" {
				if secs, ok := parseDeltaSeconds(value); ok {
					c.MaxAge = MaxAgeOf(secs)
				}
			}
		case "domain":
			// Empty Domain values are ignored entirely.
			if value != "" {
				d := strings.TrimPrefix(strings.TrimSpace(value), ".")
				if d != "" {
					c.Domain = strings.ToLower(d)
				}
			}
		case "path":
			// A Path not starting with "/" resets to unset, which marks
			// the default-path as applicable.
			if strings.HasPrefix(value, "/") {
				c.Path = value
			} else {
				c.Path = ""
			}
		case "secure":
			c.Secure = true
		case "httponly":
			c.HttpOnly = true
		case "samesite":
			c.SameSite = ParseSameSite(value)
		default:
			c.Extensions = append(c.Extensions, av)
		}
	}

	return c, nil
}

// parsePair tokenizes the cookie-pair before the first semicolon.
func parsePair(pair string, loose bool) (*Cookie, error) {
	pair = trimTerminator(pair)

	firstEq := strings.IndexByte(pair, '=')
	if loose {
		if firstEq == 0 {
			// Keyless cookie like "=value": drop the leading "=" and look
			// for a later one so "=k=v" still yields key "k".
			pair = pair[1:]
			firstEq = strings.IndexByte(pair, '=')
		}
	} else if firstEq <= 0 {
		return nil, ErrMalformedPair
	}

	var key, value string
	if firstEq <= 0 {
		value = strings.TrimSpace(pair)
	} else {
		key = strings.TrimSpace(pair[:firstEq])
		value = strings.TrimSpace(pair[firstEq+1:])
	}
	if hasControlChars(key) || hasControlChars(value) {
		return nil, ErrMalformedPair
	}

	return New(WithKey(key), WithValue(value)), nil
}

// trimTerminator cuts the string at the first NUL, LF, or CR, each checked
// independently per RFC 6265's relaxed terminator handling.
func trimTerminator(s string) string {
	for _, terminator := range []string{"\n", "\r", "\x00"} {
		if idx := strings.Index(s, terminator); idx >= 0 {
			s = s[:idx]
		}
	}
	return s
}

// parseDeltaSeconds accepts exactly ^-?[0-9]+$ and returns the value as
// signed seconds. Values outside int64 range are treated as unparseable.
func parseDeltaSeconds(s string) (int64, bool) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func hasControlChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] <= 0x1f {
			return true
		}
	}
	return false
}
