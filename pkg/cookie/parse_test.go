package cookie_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biscuitlabs/toughcookie/pkg/cookie"
)

func TestParse_BasicPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantValue string
	}{
		{name: "simple pair", input: "foo=bar", wantKey: "foo", wantValue: "bar"},
		{name: "surrounding whitespace", input: "  foo  =  bar  ", wantKey: "foo", wantValue: "bar"},
		{name: "empty value", input: "foo=", wantKey: "foo", wantValue: ""},
		{name: "value with equals", input: "foo=bar=baz", wantKey: "foo", wantValue: "bar=baz"},
		{name: "trailing semicolon", input: "foo=bar;", wantKey: "foo", wantValue: "bar"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := cookie.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, c.Key)
			assert.Equal(t, tt.wantValue, c.Value)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.Parse("")
		require.ErrorIs(t, err, cookie.ErrEmptyInput)

		_, err = cookie.Parse("   ")
		require.ErrorIs(t, err, cookie.ErrEmptyInput)
	})

	t.Run("strict mode requires a name", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.Parse("=abc")
		require.ErrorIs(t, err, cookie.ErrMalformedPair)

		_, err = cookie.Parse("abc")
		require.ErrorIs(t, err, cookie.ErrMalformedPair)
	})

	t.Run("control characters in name or value", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.Parse("fo\x01o=bar")
		require.ErrorIs(t, err, cookie.ErrMalformedPair)

		_, err = cookie.Parse("foo=b\x1far")
		require.ErrorIs(t, err, cookie.ErrMalformedPair)
	})
}

func TestParse_LooseMode(t *testing.T) {
	t.Parallel()

	t.Run("keyless cookie", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("=abc", cookie.Loose())
		require.NoError(t, err)
		assert.Empty(t, c.Key)
		assert.Equal(t, "abc", c.Value)
	})

	t.Run("leading equals with a later pair", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("=foo=bar", cookie.Loose())
		require.NoError(t, err)
		assert.Equal(t, "foo", c.Key)
		assert.Equal(t, "bar", c.Value)
	})

	t.Run("no equals at all", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("abc", cookie.Loose())
		require.NoError(t, err)
		assert.Empty(t, c.Key)
		assert.Equal(t, "abc", c.Value)
	})
}

func TestParse_Terminators(t *testing.T) {
	t.Parallel()

	// The pair is cut at the first NUL, LF, or CR, each checked on its own.
	for _, tt := range []struct {
		name  string
		input string
	}{
		{name: "newline", input: "foo=bar\nbaz=qux"},
		{name: "carriage return", input: "foo=bar\rbaz=qux"},
		{name: "nul", input: "foo=bar\x00baz=qux"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := cookie.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "foo", c.Key)
			assert.Equal(t, "bar", c.Value)
		})
	}
}

func TestParse_Attributes(t *testing.T) {
	t.Parallel()

	t.Run("domain path secure", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; Domain=example.com; Path=/; Secure")
		require.NoError(t, err)
		assert.Equal(t, "foo", c.Key)
		assert.Equal(t, "bar", c.Value)
		assert.Equal(t, "example.com", c.Domain)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.Secure)
		assert.Nil(t, c.HostOnly, "parsing never decides host-only")
	})

	t.Run("domain is lower-cased and leading dot stripped", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; Domain=.EXAMPLE.Com")
		require.NoError(t, err)
		assert.Equal(t, "example.com", c.Domain)
	})

	t.Run("empty domain is ignored", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; Domain=example.com; Domain=")
		require.NoError(t, err)
		assert.Equal(t, "example.com", c.Domain, "empty Domain keeps the prior value")
	})

	t.Run("path must start with slash", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; Path=/app")
		require.NoError(t, err)
		assert.Equal(t, "/app", c.Path)

		c, err = cookie.Parse("foo=bar; Path=/app; Path=relative")
		require.NoError(t, err)
		assert.Empty(t, c.Path, "a bad Path resets to unset, i.e. default-path")
	})

	t.Run("expires", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; Expires=Tue, 15 Jan 2013 21:47:38 GMT")
		require.NoError(t, err)
		got, ok := c.Expires.Value()
		require.True(t, ok)
		assert.True(t, got.Equal(time.Date(2013, time.January, 15, 21, 47, 38, 0, time.UTC)))
	})

	t.Run("bad expires is ignored", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("x=y; Expires=not-a-date")
		require.NoError(t, err)
		assert.True(t, c.Expires.IsInfinite(), "cookie keeps the default expiry")
	})

	t.Run("max-age", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("a=1; Max-Age=3600")
		require.NoError(t, err)
		secs, ok := c.MaxAge.Seconds()
		require.True(t, ok)
		assert.Equal(t, int64(3600), secs)

		c, err = cookie.Parse("a=1; Max-Age=-10")
		require.NoError(t, err)
		secs, ok = c.MaxAge.Seconds()
		require.True(t, ok)
		assert.Equal(t, int64(-10), secs)
	})

	t.Run("non-numeric max-age is ignored", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"1.5", "1e3", "+5", "forever", "0x10"} {
			c, err := cookie.Parse("a=1; Max-Age=" + bad)
			require.NoError(t, err)
			assert.False(t, c.MaxAge.IsSet(), "Max-Age=%s should be ignored", bad)
		}
	})

	t.Run("httponly", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; HttpOnly")
		require.NoError(t, err)
		assert.True(t, c.HttpOnly)
	})

	t.Run("flag values are ignored", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; Secure=ignored; HttpOnly=whatever")
		require.NoError(t, err)
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
	})

	t.Run("last value wins", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; Path=/a; Path=/b; Max-Age=1; Max-Age=2")
		require.NoError(t, err)
		assert.Equal(t, "/b", c.Path)
		secs, _ := c.MaxAge.Seconds()
		assert.Equal(t, int64(2), secs)
	})

	t.Run("empty segments are skipped", func(t *testing.T) {
		t.Parallel()

		c, err := cookie.Parse("foo=bar; ; ;; Secure")
		require.NoError(t, err)
		assert.True(t, c.Secure)
		assert.Nil(t, c.Extensions)
	})
}

func TestParse_SameSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  cookie.SameSite
	}{
		{input: "k=v; SameSite=Strict", want: cookie.SameSiteStrict},
		{input: "k=v; SameSite=STRICT", want: cookie.SameSiteStrict},
		{input: "k=v; SameSite=strict", want: cookie.SameSiteStrict},
		{input: "k=v; SameSite=Lax", want: cookie.SameSiteLax},
		{input: "k=v; SameSite=None", want: cookie.SameSiteNone},
		{input: "k=v; SameSite=invalid", want: ""},
		{input: "k=v; SameSite", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			c, err := cookie.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.SameSite)
		})
	}
}

func TestParse_Extensions(t *testing.T) {
	t.Parallel()

	c, err := cookie.Parse("k=v; unknown-flag; UNKNOWN2=xyz")
	require.NoError(t, err)
	assert.Equal(t, []string{"unknown-flag", "UNKNOWN2=xyz"}, c.Extensions,
		"unrecognized attributes keep their original case and order")
}

func TestParse_RoundTripsCookieString(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"foo=bar", "a=1", "k=v=w", "name=with spaces inside"} {
		c, err := cookie.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.CookieString())
	}
}
