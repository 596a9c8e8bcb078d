package validation

import "fmt"

const MaxCredentialLen = 32

// ValidateAccountID only bounds the input length. Empty or unknown numbers
// are still sent to authentication, which reports them like any other miss.
func ValidateAccountID(id string) error {
	if len(id) > MaxCredentialLen {
		return fmt.Errorf("account number too long (max %d characters)", MaxCredentialLen)
	}
	return nil
}

// ValidatePIN accepts survey's any-typed answers as well as plain strings.
// An empty PIN is allowed through; authentication rejects it.
func ValidatePIN(val any) error {
	pin, ok := val.(string)
	if !ok {
		return fmt.Errorf("PIN must be a string")
	}

	if len(pin) > MaxCredentialLen {
		return fmt.Errorf("PIN too long (max %d characters)", MaxCredentialLen)
	}
	return nil
}
