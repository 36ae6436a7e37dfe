package helpers

import (
	"strings"
)

// IsAddressValid checks if the provided string is a valid hex account address
// It verifies:
// 1. The address is exactly 42 characters long (including 0x prefix)
// 2. The address starts with "0x"
// 3. The remaining 40 characters are valid hexadecimal
func IsAddressValid(address string) bool {
	if len(address) != 42 {
		return false
	}

	if !strings.HasPrefix(address, "0x") {
		return false
	}

	for _, c := range address[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}

// IsTokenSymbolValid checks if the provided string looks like a token symbol:
// 2 to 12 characters, uppercase letters and digits only.
func IsTokenSymbolValid(symbol string) bool {
	if len(symbol) < 2 || len(symbol) > 12 {
		return false
	}

	for _, c := range symbol {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}

	return true
}
