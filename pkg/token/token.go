package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Size is the number of random bytes behind every api token.
const Size = 16

// Random issues hex encoded tokens from the operating system CSPRNG.
type Random struct{}

func (Random) NewToken() (string, error) {
	buf := make([]byte, Size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
