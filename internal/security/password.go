package security

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashSecret generates a bcrypt hash of a portal secret
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifySecret checks if the provided secret matches the stored hash
func VerifySecret(hashedSecret, secret string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedSecret), []byte(secret))
	return err == nil
}
