package client

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"strings"
)

// HashPassword is the pre-hash applied before a password leaves the client:
// uppercase hex MD5 of the UTF-8 bytes. The server stores and compares it as is.
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password)) //nolint:gosec

	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
