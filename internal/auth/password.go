package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor all stored hashes are created with.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext. Two calls with
// the same input produce different encodings; the salt travels inside the
// encoded output.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. A
// mismatch is a normal outcome, not an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
