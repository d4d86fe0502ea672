package voting

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VoterID derives the stored voter identifier from an originating address
// as hex HMAC-SHA256 keyed by salt. Raw addresses are never persisted.
func VoterID(salt, address string) string {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(address))
	return hex.EncodeToString(mac.Sum(nil))
}
