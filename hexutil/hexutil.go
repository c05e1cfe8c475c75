// Package hexutil provides hex encoding and decoding over strings.
package hexutil

import (
	"encoding/hex"
	"fmt"
)

// Encode returns the lowercase hex encoding of s, two digits per byte.
func Encode(s string) string {
	return hex.EncodeToString([]byte(s))
}

// Decode reverses Encode. Odd-length input or non-hex digits yield an
// error.
func Decode(s string) (string, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode hex: %w", err)
	}
	return string(data), nil
}
