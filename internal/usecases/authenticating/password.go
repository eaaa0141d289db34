package authenticating

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

const (
	minPasswordLength = 8

	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

// ValidatePasswordStrength exige 8 caracteres com maiúscula, minúscula, número e caractere especial
func ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return weakPassword("a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return weakPassword("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return weakPassword("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return weakPassword("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return weakPassword("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

func weakPassword(details string) error {
	return NewAuthError(ErrWeakPassword, apiErrors.ErrValidationFailed, details)
}

// generateStrongPassword gera uma senha com ao menos um caractere de cada classe
func generateStrongPassword(length int) (string, error) {
	if length < minPasswordLength {
		length = minPasswordLength
	}

	const allChars = lowerChars + upperChars + numberChars + specialChars

	password := make([]byte, 0, length)
	for _, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		c, err := randomChar(charset)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < length {
		c, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// embaralha para as classes não ficarem em posição fixa
	for i := len(password) - 1; i > 0; i-- {
		j, err := randomInt(int64(i + 1))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func randomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
