package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const usernameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var usernameCleaner = regexp.MustCompile(`[^a-z0-9._-]`)

// SanitizeUsernameFragment lower-cases a candidate fragment and strips every
// character outside [a-z0-9._-]. A fragment that sanitizes to nothing
// becomes "user".
func SanitizeUsernameFragment(value string) string {
	cleaned := usernameCleaner.ReplaceAllString(strings.ToLower(value), "")
	if cleaned == "" {
		return "user"
	}
	return cleaned
}

// generateUniqueUsername derives a username from the email local part,
// appending a random 4-character suffix on collision. After maxAttempts it
// falls back to a fully random name.
func (s *UserService) generateUniqueUsername(ctx context.Context, email string, maxAttempts int) (string, error) {
	localPart, _, _ := strings.Cut(email, "@")
	base := SanitizeUsernameFragment(localPart)
	candidate := base

	for i := 0; i < maxAttempts; i++ {
		exists, err := s.store.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		suffix, err := randomFragment(4)
		if err != nil {
			return "", err
		}
		candidate = base + suffix
	}

	suffix, err := randomFragment(8)
	if err != nil {
		return "", err
	}
	return "user" + suffix, nil
}

func randomFragment(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(usernameAlphabet))))
		if err != nil {
			return "", fmt.Errorf("random fragment: %w", err)
		}
		b.WriteByte(usernameAlphabet[idx.Int64()])
	}
	return b.String(), nil
}
