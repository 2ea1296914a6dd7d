package hash

import "golang.org/x/crypto/bcrypt"

// HashKey produces the bcrypt hash stored in ADMIN_KEY_HASH.
func HashKey(key string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func CheckKey(hashed, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(key)) == nil
}
