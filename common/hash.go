package common

import (
	"encoding/hex"

	"github.com/btcsuite/fastsha256"
)

// HashFields returns the lowercase hex SHA-256 digest of fields, fed to the
// hasher one after the other in the given order with no separators.
func HashFields(fields ...string) string {
	h := fastsha256.New()
	for _, f := range fields {
		h.Write([]byte(f))
	}
	return hex.EncodeToString(h.Sum(nil))
}
