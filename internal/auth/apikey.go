package auth

import "golang.org/x/crypto/bcrypt"

// HashAPIKey produces the bcrypt hash stored in configuration for the
// kiosk API key.
func HashAPIKey(key string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareAPIKey checks a presented key against the configured hash.
func CompareAPIKey(hash, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
