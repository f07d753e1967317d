package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Size is the number of digest bytes kept in a Payload digest.
const Size = 10

// Payload returns a short hex digest of a response body.
//
// It hashes with BLAKE2b-256 and truncates to Size bytes (20 hex chars).
func Payload(body []byte) string {
	sum := blake2b.Sum256(body)
	return hex.EncodeToString(sum[:Size])
}
