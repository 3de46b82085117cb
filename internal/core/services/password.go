package services

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher turns a plaintext password into its stored digest. The digest
// is deterministic and unsalted because sign-in looks users up by
// digest equality in the store; a salted scheme could not support that
// lookup.
type Hasher struct{}

func NewHasher() *Hasher {
	return &Hasher{}
}

func (Hasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
