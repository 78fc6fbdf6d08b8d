// Package security contains everything related to the security of user data
package security

import "golang.org/x/crypto/bcrypt"

// hashCost is fixed so that every stored hash carries the same work factor.
const hashCost = 10

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), hashCost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// CheckPassword reports whether p matches the stored bcrypt hash.
func CheckPassword(p, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)) == nil
}
