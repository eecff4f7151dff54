package catalog

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T, secret string) *cursorCodec {
	t.Helper()
	c, err := newCursorCodec([]byte(secret))
	require.NoError(t, err)
	return c
}

func TestCursor_EncodeDecode(t *testing.T) {
	c := newCodec(t, "s1")
	p := Position{CreatedAt: time.Date(2026, 5, 6, 7, 8, 9, 123456000, time.UTC), ID: "a1"}

	tok, err := c.encode("u1", p)
	require.NoError(t, err)

	got, err := c.decode(tok, "u1")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
	assert.Equal(t, "a1", got.ID)

	again, err := c.encode("u1", p)
	require.NoError(t, err)
	assert.Equal(t, tok, again, "encoding is deterministic")
}

func TestCursor_Rejects(t *testing.T) {
	c := newCodec(t, "s1")
	tok, err := c.encode("u1", Position{CreatedAt: time.Unix(100, 0), ID: "a1"})
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	raw[2] ^= 0xff
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	tests := []struct {
		name  string
		codec *cursorCodec
		token string
		owner string
	}{
		{"not base64", c, "%%%", "u1"},
		{"too short", c, base64.RawURLEncoding.EncodeToString([]byte("short")), "u1"},
		{"tampered", c, tampered, "u1"},
		{"other owner", c, tok, "u2"},
		{"owner dropped", c, tok, ""},
		{"other secret", newCodec(t, "s2"), tok, "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.codec.decode(tt.token, tt.owner)
			assert.ErrorIs(t, err, common.ErrInvalidCursor)
		})
	}
}

func TestCursor_RejectsUnknownVersion(t *testing.T) {
	c := newCodec(t, "s1")
	body, err := c.enc.Marshal(cursorPayload{Version: 2, OwnerID: "u1", CreatedAt: 1, AssetID: "a"})
	require.NoError(t, err)
	tok := base64.RawURLEncoding.EncodeToString(append(body, c.mac(body)...))

	_, err = c.decode(tok, "u1")
	assert.ErrorIs(t, err, common.ErrInvalidCursor)
}
