// Package password wraps bcrypt credential hashing. bcrypt salts every digest
// with per-call randomness and compares in constant time, so equal plaintexts
// never share a digest and verification leaks no timing information.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted digest of plaintext at the default cost.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest is
// simply a non-match, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
