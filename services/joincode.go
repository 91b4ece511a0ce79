package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	JoinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	JoinCodeLength   = 8

	// MaxCodeAttempts bounds the draws GenerateUniqueCode makes before giving up.
	MaxCodeAttempts = 1000
)

var ErrCodeSpaceExhausted = errors.New("join code space exhausted")

// CodeExistsFunc reports whether a join code is already taken.
type CodeExistsFunc func(ctx context.Context, code string) (bool, error)

var alphabetSize = big.NewInt(int64(len(JoinCodeAlphabet)))

// NewJoinCode draws a code uniformly from JoinCodeAlphabet.
func NewJoinCode() (string, error) {
	return newJoinCode(rand.Reader)
}

func newJoinCode(src io.Reader) (string, error) {
	code := make([]byte, JoinCodeLength)
	for i := range code {
		n, err := rand.Int(src, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate join code: %w", err)
		}
		code[i] = JoinCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// GenerateUniqueCode draws codes until exists reports one as free. It fails
// with ErrCodeSpaceExhausted after MaxCodeAttempts draws, and returns any
// error from exists unchanged.
func GenerateUniqueCode(ctx context.Context, exists CodeExistsFunc) (string, error) {
	return generateUniqueCode(ctx, exists, MaxCodeAttempts)
}

func generateUniqueCode(ctx context.Context, exists CodeExistsFunc, maxAttempts int) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := NewJoinCode()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrCodeSpaceExhausted, maxAttempts)
}

// IsJoinCode reports whether code has the join code shape.
func IsJoinCode(code string) bool {
	if len(code) != JoinCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(JoinCodeAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

// NormalizeJoinCode trims and upper-cases user-typed codes.
func NormalizeJoinCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
