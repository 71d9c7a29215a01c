package flash

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/blake2b"
)

var ErrInvalidSignature = errors.New("invalid signature")

// Codec signs short values with a keyed BLAKE2b MAC
type Codec struct {
	key []byte
}

func NewCodec(secret string) *Codec {
	sum := blake2b.Sum256([]byte(secret))
	return &Codec{key: sum[:]}
}

func (c *Codec) mac(payload []byte) []byte {
	h, err := blake2b.New256(c.key)
	if err != nil {
		// key is always 32 bytes
		panic(err)
	}
	h.Write(payload)
	return h.Sum(nil)
}

// Sign returns payload and MAC joined by a dot, both base64url encoded
func (c *Codec) Sign(payload []byte) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString(payload) + "." + enc.EncodeToString(c.mac(payload))
}

// Verify returns the payload of a value produced by Sign
func (c *Codec) Verify(signed string) ([]byte, error) {
	encPayload, encMAC, ok := strings.Cut(signed, ".")
	if !ok {
		return nil, ErrInvalidSignature
	}

	enc := base64.RawURLEncoding
	payload, err := enc.DecodeString(encPayload)
	if err != nil {
		return nil, ErrInvalidSignature
	}
	mac, err := enc.DecodeString(encMAC)
	if err != nil {
		return nil, ErrInvalidSignature
	}

	if subtle.ConstantTimeCompare(mac, c.mac(payload)) != 1 {
		return nil, ErrInvalidSignature
	}
	return payload, nil
}
