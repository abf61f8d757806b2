package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateGameID returns a random 32 character hex id.
func GenerateGameID() string {
	bytes := make([]byte, 16)
	// crypto/rand never returns an error since Go 1.24; it crashes instead
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
