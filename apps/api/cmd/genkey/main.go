package main

import (
	"fmt"
	"os"

	"github.com/starkport/starkport-api/libs/go/helpers"
)

// Generates an admin API key and the bcrypt hash to store in
// ADMIN_API_KEY_HASH. The full key is printed once and cannot be recovered.
func main() {
	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate key: %v\n", err)
		os.Exit(1)
	}

	hash, err := helpers.HashAPIKey(fullKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("API key:    %s\n", fullKey)
	fmt.Printf("Key prefix: %s\n", keyPrefix)
	fmt.Printf("ADMIN_API_KEY_HASH=%s\n", hash)
}
