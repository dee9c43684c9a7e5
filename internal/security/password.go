package security

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of the given password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash against a candidate password
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength returns one message per unmet rule: minimum 8
// characters, at least one lowercase letter, one uppercase letter, one digit
// and one symbol. An empty slice means the password is acceptable.
func ValidatePasswordStrength(password string) []string {
	var issues []string

	if len(password) < 8 {
		issues = append(issues, "password must have at least 8 characters")
	}

	var lower, upper, digit, symbol int
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsDigit(r):
			digit++
		default:
			symbol++
		}
	}

	if lower == 0 {
		issues = append(issues, "password must contain a lowercase letter")
	}
	if upper == 0 {
		issues = append(issues, "password must contain an uppercase letter")
	}
	if digit == 0 {
		issues = append(issues, "password must contain a digit")
	}
	if symbol == 0 {
		issues = append(issues, "password must contain a symbol")
	}

	return issues
}

// JoinIssues flattens validation messages into a single error string
func JoinIssues(issues []string) string {
	return strings.Join(issues, "; ")
}
