// Package password implements PBKDF2-SHA256 password hashing using the
// same encoded form the previous deployment stored, so existing rows keep
// verifying: pbkdf2:sha256:<iterations>$<salt>$<hex digest>.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	method     = "pbkdf2:sha256"
	iterations = 600000
	saltLength = 8
	keyLength  = 32
)

// Hash derives a salted PBKDF2-SHA256 digest from a password and returns
// it in encoded form.
func Hash(password string) (string, error) {
	raw := make([]byte, saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	// The salt is stored verbatim inside the encoded string, so it must
	// stay printable and must not contain the field separator.
	salt := hex.EncodeToString(raw)

	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	encoded := method + ":" + strconv.Itoa(iterations) + "$" + salt + "$" + hex.EncodeToString(key)
	return encoded, nil
}

// Verify reports whether the password matches the encoded hash. Malformed
// encodings verify false.
func Verify(password, encoded string) bool {
	iter, salt, digest, ok := decode(encoded)
	if !ok {
		return false
	}

	key := pbkdf2.Key([]byte(password), []byte(salt), iter, len(digest), sha256.New)
	return subtle.ConstantTimeCompare(key, digest) == 1
}

// decode splits an encoded hash into its iteration count, salt, and raw
// digest bytes.
func decode(encoded string) (int, string, []byte, bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return 0, "", nil, false
	}

	if !strings.HasPrefix(parts[0], method+":") {
		return 0, "", nil, false
	}
	iter, err := strconv.Atoi(strings.TrimPrefix(parts[0], method+":"))
	if err != nil || iter <= 0 {
		return 0, "", nil, false
	}

	digest, err := hex.DecodeString(parts[2])
	if err != nil || len(digest) == 0 {
		return 0, "", nil, false
	}

	return iter, parts[1], digest, true
}
