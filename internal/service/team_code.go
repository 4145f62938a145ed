package service

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// teamCodeAlphabet holds the characters a join code is sampled from.
// Codes are normalized to uppercase before lookup.
const teamCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// teamCodeLength is the fixed length of a join code
const teamCodeLength = 5

// generateTeamCode returns a random 5-character uppercase alphanumeric join
// code. Bytes outside the largest multiple of the alphabet size are rejected
// so every character is equally likely.
func generateTeamCode() (string, error) {
	const maxAccepted = 256 - (256 % len(teamCodeAlphabet))

	code := make([]byte, 0, teamCodeLength)
	buf := make([]byte, teamCodeLength)
	for len(code) < teamCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxAccepted {
				continue
			}
			code = append(code, teamCodeAlphabet[int(b)%len(teamCodeAlphabet)])
			if len(code) == teamCodeLength {
				break
			}
		}
	}
	return string(code), nil
}

// normalizeTeamCode uppercases and trims a user-supplied join code
func normalizeTeamCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
