package walletwire

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short stable digest of a payload. Rejected
// payloads are logged by fingerprint so operators can correlate reports
// without the payload, which may hold secrets, reaching the log.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
