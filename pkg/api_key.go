package pkg

import "golang.org/x/crypto/bcrypt"

const apiKeyHashCost = 12

// HashAPIKey produces the bcrypt hash that is put into FITTRACK_API_KEY_HASH
func HashAPIKey(apiKey string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), apiKeyHashCost)
	return BytesToString(bytes), err
}

func CheckAPIKeyHash(apiKey, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey)) == nil
}
