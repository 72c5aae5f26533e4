package date

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned when the input does not satisfy the
// cookie-date grammar.
var ErrInvalidDate = errors.New("date: invalid cookie date")

// imfFixdate is the serialization layout for Expires values
// (RFC 7231 IMF-fixdate, always UTC).
const imfFixdate = "Mon, 02 Jan 2006 15:04:05 GMT"

var monthNums = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// Format renders t as an IMF-fixdate string in UTC.
func Format(t time.Time) string {
	return t.UTC().Format(imfFixdate)
}

// Parse interprets s using the RFC 6265 section 5.1.1 date algorithm.
// The input is split on delimiter runs and each token is matched, first
// come first served, against time-of-day, day-of-month, month, and year
// productions. Two-digit years 70-99 map to 19xx and 0-69 to 20xx.
func Parse(s string) (time.Time, error) {
	var (
		hour, minute, second int
		dayOfMonth           int
		month                time.Month
		year                 int

		timeFound, domFound, monthFound, yearFound bool
	)

	for _, token := range strings.FieldsFunc(s, isDateDelim) {
		if !timeFound {
			if h, m, sec, ok := parseTime(token); ok {
				hour, minute, second = h, m, sec
				timeFound = true
				continue
			}
		}
		if !domFound {
			if v, ok := parseDigits(token, 1, 2, true); ok {
				dayOfMonth = v
				domFound = true
				continue
			}
		}
		if !monthFound {
			if m, ok := parseMonth(token); ok {
				month = m
				monthFound = true
				continue
			}
		}
		if !yearFound {
			if v, ok := parseDigits(token, 2, 4, true); ok {
				switch {
				case v >= 70 && v <= 99:
					v += 1900
				case v >= 0 && v <= 69:
					v += 2000
				}
				year = v
				yearFound = true
			}
		}
	}

	if !timeFound || !domFound || !monthFound || !yearFound ||
		dayOfMonth < 1 || dayOfMonth > 31 || year < 1601 ||
		hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, ErrInvalidDate
	}

	return time.Date(year, month, dayOfMonth, hour, minute, second, 0, time.UTC), nil
}

// isDateDelim reports whether r is a cookie-date delimiter:
// %x09 / %x20-2F / %x3B-40 / %x5B-60 / %x7B-7E.
func isDateDelim(r rune) bool {
	return r == 0x09 ||
		(r >= 0x20 && r <= 0x2f) ||
		(r >= 0x3b && r <= 0x40) ||
		(r >= 0x5b && r <= 0x60) ||
		(r >= 0x7b && r <= 0x7e)
}

// parseTime matches hms-time: three colon-separated 1*2DIGIT fields.
// Only the seconds field may carry trailing non-digits.
func parseTime(token string) (hour, minute, second int, ok bool) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var vals [3]int
	for i, part := range parts {
		trailingOK := i == 2
		v, ok := parseDigits(part, 1, 2, trailingOK)
		if !ok {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}

// parseDigits reads a leading run of ASCII digits. The run must span
// between minDigits and maxDigits characters, and unless trailingOK is set
// it must cover the whole token.
func parseDigits(token string, minDigits, maxDigits int, trailingOK bool) (int, bool) {
	count := 0
	for count < len(token) && token[count] >= '0' && token[count] <= '9' {
		count++
	}
	if count < minDigits || count > maxDigits {
		return 0, false
	}
	if !trailingOK && count != len(token) {
		return 0, false
	}
	n := 0
	for _, c := range []byte(token[:count]) {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// parseMonth matches a month by its case-insensitive 3-letter prefix.
func parseMonth(token string) (time.Month, bool) {
	if len(token) < 3 {
		return 0, false
	}
	m, ok := monthNums[strings.ToLower(token[:3])]
	return m, ok
}
