package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const keyNamespace = "ciq"

// Key builds a namespaced cache key from an operation prefix and the request
// parts that define identity. The parts are hashed so arbitrary URLs and
// text never leak into key space; 16 hex characters keeps keys short while
// leaving collisions out of practical reach.
func Key(prefix string, parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return keyNamespace + ":" + prefix + ":" + hex.EncodeToString(h[:])[:16]
}
