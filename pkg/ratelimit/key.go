package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
)

// maxIdentityLength bounds the identity part of a scoped key to keep storage
// keys short in backends like Redis.
const maxIdentityLength = 64

// Key builds a scoped rate-limit key from a purpose tag and a caller
// attribute, e.g. Key("inscription:ip", "203.0.113.7"). Scoping isolates
// quotas per concern: the same address or email gets independent counters
// for each endpoint and scope.
//
// Oversized identities (long email addresses, abusive input) are hashed to
// 32 hex chars so they cannot inflate storage keys.
func Key(scope, identity string) string {
	if len(identity) > maxIdentityLength {
		hash := sha256.Sum256([]byte(identity))
		identity = hex.EncodeToString(hash[:16])
	}
	return scope + ":" + identity
}
