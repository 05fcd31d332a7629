// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

var (
	ErrInvalidSignature = errors.New("invalid control signature")
	ErrMissingSecret    = errors.New("panel secret is required")
)

// Signer tags control payloads so a page index echoed back by the
// platform can be trusted.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign creates a short, deterministic tag for a control payload
// Uses HMAC for determinism and base62 encoding to stay within custom ID limits
func (s *Signer) Sign(payload string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(payload))
	sum := h.Sum(nil)

	// Take first 8 bytes for a shorter tag
	return base62Encode(sum[:8])
}

// Verify checks if the tag is valid for the payload
func (s *Signer) Verify(payload, tag string) error {
	expected := s.Sign(payload)
	if !hmac.Equal([]byte(tag), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}

// base62Encode converts bytes to base62 (0-9, a-z, A-Z)
// The output never contains the ':' used to separate control ID fields
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Convert bytes to a big integer
	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	// Convert to base62
	result := make([]byte, 0, 11) // max length for uint64
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	// Reverse the string
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
