package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/elitekutzdev/elitekutz-sms/internal/auth"
)

// Generates the bcrypt hash for AUTH_API_KEY_HASH from a kiosk API key.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: keygen <api-key>")
		os.Exit(1)
	}

	hash, err := auth.HashAPIKey(os.Args[1], bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("AUTH_API_KEY_HASH=%s\n", hash)
}
