// Package allanime implements the AllAnime provider client over its GraphQL API.
package allanime

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// obfuscationKey is the XOR byte applied to every character of an obfuscated source URL.
const obfuscationKey = 56

// decodeSourceURL reverses the provider's source URL obfuscation.
// Obfuscated values carry a "--" prefix followed by the hex encoding of the
// URL bytes, each XORed with the obfuscation key. Values without the prefix
// are returned unchanged.
func decodeSourceURL(s string) (string, error) {
	if !strings.HasPrefix(s, "--") {
		return s, nil
	}

	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return "", fmt.Errorf("decode source url: %w", err)
	}

	for i := range raw {
		raw[i] ^= obfuscationKey
	}

	return string(raw), nil
}
