package security

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL derives the default avatar for an email address. The hash is
// deterministic, so the same email always maps to the same picture until
// the user uploads their own.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=250&d=retro", hex.EncodeToString(sum[:]))
}
