package payload

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentKey is the primary key of prompt and label records: the hex sha256 of
// the exact UTF-8 text. Same text, same key, so saves are idempotent upserts.
func ContentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
