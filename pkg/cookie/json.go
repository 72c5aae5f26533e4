package cookie

import (
	"bytes"
	"encoding/json"
)

// cookieJSON is the serialized shape. The field set is a fixed whitelist;
// the creation index never leaves the process. Fields at their default are
// omitted to keep the output minimal, which is why a never-expiring cookie
// (the Expires default) serializes without an expires member.
type cookieJSON struct {
	Key           string   `json:"key,omitempty"`
	Value         string   `json:"value,omitempty"`
	Expires       *Time    `json:"expires,omitempty"`
	MaxAge        *MaxAge  `json:"maxAge,omitempty"`
	Domain        string   `json:"domain,omitempty"`
	Path          string   `json:"path,omitempty"`
	Secure        bool     `json:"secure,omitempty"`
	HttpOnly      bool     `json:"httpOnly,omitempty"`
	Extensions    []string `json:"extensions,omitempty"`
	Creation      *Time    `json:"creation,omitempty"`
	HostOnly      *bool    `json:"hostOnly,omitempty"`
	PathIsDefault *bool    `json:"pathIsDefault,omitempty"`
	LastAccessed  *Time    `json:"lastAccessed,omitempty"`
	SameSite      string   `json:"sameSite,omitempty"`
}

// rawCookieJSON defers each whitelisted field so decoding can coerce them
// one by one and drop the ones whose shape does not fit.
type rawCookieJSON struct {
	Key           json.RawMessage `json:"key"`
	Value         json.RawMessage `json:"value"`
	Expires       json.RawMessage `json:"expires"`
	MaxAge        json.RawMessage `json:"maxAge"`
	Domain        json.RawMessage `json:"domain"`
	Path          json.RawMessage `json:"path"`
	Secure        json.RawMessage `json:"secure"`
	HttpOnly      json.RawMessage `json:"httpOnly"`
	Extensions    json.RawMessage `json:"extensions"`
	Creation      json.RawMessage `json:"creation"`
	HostOnly      json.RawMessage `json:"hostOnly"`
	PathIsDefault json.RawMessage `json:"pathIsDefault"`
	LastAccessed  json.RawMessage `json:"lastAccessed"`
	SameSite      json.RawMessage `json:"sameSite"`
}

// FromJSON decodes a serialized cookie. Empty input returns ErrEmptyInput
// and structurally invalid JSON returns ErrMalformedJSON; fields with an
// unexpected shape inside valid JSON are dropped, not failed.
func FromJSON(data []byte) (*Cookie, error) {
	c := new(Cookie)
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}

// MarshalJSON implements json.Marshaler over the whitelisted field set.
func (c *Cookie) MarshalJSON() ([]byte, error) {
	out := cookieJSON{
		Key:           c.Key,
		Value:         c.Value,
		Domain:        c.Domain,
		Path:          c.Path,
		Secure:        c.Secure,
		HttpOnly:      c.HttpOnly,
		HostOnly:      c.HostOnly,
		PathIsDefault: c.PathIsDefault,
		SameSite:      string(c.SameSite),
	}
	// Only the infinite default is skipped. An unset Expires is a state
	// of its own and must survive the round trip, so it is emitted as an
	// explicit null.
	if !c.Expires.IsInfinite() {
		e := c.Expires
		out.Expires = &e
	}
	if c.MaxAge.IsSet() {
		m := c.MaxAge
		out.MaxAge = &m
	}
	if len(c.Extensions) > 0 {
		out.Extensions = c.Extensions
	}
	if c.Creation.IsSet() {
		t := c.Creation
		out.Creation = &t
	}
	if c.LastAccessed.IsSet() {
		t := c.LastAccessed
		out.LastAccessed = &t
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. The receiver is reset to
// construction defaults first, so decoding counts as a construction and
// assigns a fresh creation index. Each whitelisted field is coerced
// independently; a field whose value does not match its expected shape is
// skipped and the default kept.
func (c *Cookie) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrEmptyInput
	}

	// A struct target rejects every non-object JSON value except null.
	if bytes.Equal(data, []byte("null")) {
		return ErrMalformedJSON
	}
	var raw rawCookieJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrMalformedJSON
	}

	*c = *New()

	decodeString(raw.Key, &c.Key)
	decodeString(raw.Value, &c.Value)
	decodeTime(raw.Expires, &c.Expires)
	decodeMaxAge(raw.MaxAge, &c.MaxAge)
	decodeString(raw.Domain, &c.Domain)
	decodeString(raw.Path, &c.Path)
	decodeBool(raw.Secure, &c.Secure)
	decodeBool(raw.HttpOnly, &c.HttpOnly)
	if raw.Extensions != nil {
		var exts []string
		if err := json.Unmarshal(raw.Extensions, &exts); err == nil {
			c.Extensions = exts
		}
	}
	decodeTime(raw.Creation, &c.Creation)
	decodeTriState(raw.HostOnly, &c.HostOnly)
	decodeTriState(raw.PathIsDefault, &c.PathIsDefault)
	decodeTime(raw.LastAccessed, &c.LastAccessed)
	if raw.SameSite != nil {
		var s string
		if err := json.Unmarshal(raw.SameSite, &s); err == nil {
			c.SameSite = ParseSameSite(s)
		}
	}

	return nil
}

func decodeString(raw json.RawMessage, dst *string) {
	if raw == nil {
		return
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*dst = s
	}
}

func decodeBool(raw json.RawMessage, dst *bool) {
	if raw == nil {
		return
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		*dst = b
	}
}

func decodeTriState(raw json.RawMessage, dst **bool) {
	if raw == nil {
		return
	}
	var b *bool
	if err := json.Unmarshal(raw, &b); err == nil {
		*dst = b
	}
}

func decodeTime(raw json.RawMessage, dst *Time) {
	if raw == nil {
		return
	}
	var t Time
	if err := t.UnmarshalJSON(raw); err == nil {
		*dst = t
	}
}

func decodeMaxAge(raw json.RawMessage, dst *MaxAge) {
	if raw == nil {
		return
	}
	var m MaxAge
	if err := m.UnmarshalJSON(raw); err == nil {
		*dst = m
	}
}
