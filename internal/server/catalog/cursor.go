package catalog

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

const (
	cursorVersion = 1
	cursorMACSize = 16
)

// cursorPayload is the signed body of a continuation token. It names a sort
// position, never a storage token, so it survives deletion of its anchor.
type cursorPayload struct {
	Version   int    `cbor:"1,keyasint"`
	OwnerID   string `cbor:"2,keyasint,omitempty"`
	CreatedAt int64  `cbor:"3,keyasint"`
	AssetID   string `cbor:"4,keyasint"`
}

type cursorCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
	key [32]byte
}

func newCursorCodec(secret []byte) (*cursorCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("cursor encoder: %w", err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("cursor decoder: %w", err)
	}
	return &cursorCodec{enc: enc, dec: dec, key: blake3.Sum256(secret)}, nil
}

func (c *cursorCodec) mac(body []byte) []byte {
	h, err := blake3.NewKeyed(c.key[:])
	if err != nil {
		panic("catalog: blake3 keyed hash: " + err.Error())
	}
	_, _ = h.Write(body)
	return h.Sum(nil)[:cursorMACSize]
}

// encode signs the position p within the owner partition.
func (c *cursorCodec) encode(ownerID string, p Position) (string, error) {
	body, err := c.enc.Marshal(cursorPayload{
		Version:   cursorVersion,
		OwnerID:   ownerID,
		CreatedAt: p.CreatedAt.UnixNano(),
		AssetID:   p.ID,
	})
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(append(body, c.mac(body)...)), nil
}

// decode verifies token and returns its position. The token must have been
// issued for the same owner partition.
func (c *cursorCodec) decode(token, ownerID string) (Position, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) <= cursorMACSize {
		return Position{}, fmt.Errorf("%w: malformed", common.ErrInvalidCursor)
	}

	body, sig := raw[:len(raw)-cursorMACSize], raw[len(raw)-cursorMACSize:]
	if subtle.ConstantTimeCompare(sig, c.mac(body)) != 1 {
		return Position{}, fmt.Errorf("%w: signature mismatch", common.ErrInvalidCursor)
	}

	var p cursorPayload
	if err := c.dec.Unmarshal(body, &p); err != nil {
		return Position{}, fmt.Errorf("%w: %v", common.ErrInvalidCursor, err)
	}
	if p.Version != cursorVersion {
		return Position{}, fmt.Errorf("%w: unsupported version %d", common.ErrInvalidCursor, p.Version)
	}
	if p.OwnerID != ownerID {
		return Position{}, fmt.Errorf("%w: issued for a different owner", common.ErrInvalidCursor)
	}
	return Position{CreatedAt: time.Unix(0, p.CreatedAt).UTC(), ID: p.AssetID}, nil
}
