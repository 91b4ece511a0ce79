package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJoinCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		code, err := NewJoinCode()
		require.NoError(t, err)
		require.Len(t, code, JoinCodeLength)
		for _, c := range code {
			require.True(t, strings.ContainsRune(JoinCodeAlphabet, c), "unexpected character %q in %s", c, code)
		}
		assert.True(t, IsJoinCode(code))
		seen[code] = true
	}
	assert.Greater(t, len(seen), 490, "codes should practically never repeat")
}

func TestNewJoinCodeUsesWholeAlphabet(t *testing.T) {
	counts := map[rune]int{}
	for i := 0; i < 2000; i++ {
		code, err := NewJoinCode()
		require.NoError(t, err)
		for _, c := range code {
			counts[c]++
		}
	}
	assert.Len(t, counts, len(JoinCodeAlphabet))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }

func TestNewJoinCodeSourceFailure(t *testing.T) {
	_, err := newJoinCode(failingReader{})
	assert.ErrorContains(t, err, "entropy unavailable")
}

func TestGenerateUniqueCodeSkipsTakenCodes(t *testing.T) {
	var checked []string
	exists := func(_ context.Context, code string) (bool, error) {
		checked = append(checked, code)
		return len(checked) <= 3, nil
	}

	code, err := GenerateUniqueCode(context.Background(), exists)
	require.NoError(t, err)
	require.Len(t, checked, 4)
	assert.Equal(t, checked[3], code)
	for _, taken := range checked[:3] {
		assert.NotEqual(t, taken, code)
	}
}

func TestGenerateUniqueCodeNeverReturnsTakenCode(t *testing.T) {
	taken := map[string]bool{}
	exists := func(_ context.Context, code string) (bool, error) {
		// Every other distinct code is treated as taken.
		if _, ok := taken[code]; !ok {
			taken[code] = len(taken)%2 == 0
		}
		return taken[code], nil
	}

	for i := 0; i < 50; i++ {
		code, err := GenerateUniqueCode(context.Background(), exists)
		require.NoError(t, err)
		assert.False(t, taken[code])
	}
}

func TestGenerateUniqueCodeExhausted(t *testing.T) {
	calls := 0
	exists := func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	}

	_, err := GenerateUniqueCode(context.Background(), exists)
	assert.ErrorIs(t, err, ErrCodeSpaceExhausted)
	assert.Equal(t, MaxCodeAttempts, calls)
}

func TestGenerateUniqueCodePredicateError(t *testing.T) {
	boom := errors.New("db down")
	_, err := GenerateUniqueCode(context.Background(), func(context.Context, string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestGenerateUniqueCodeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateUniqueCode(ctx, func(context.Context, string) (bool, error) {
		t.Fatal("predicate must not run after cancellation")
		return false, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsJoinCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"ABCD1234", true},
		{"ZZZZZZZZ", true},
		{"abcd1234", false},
		{"ABCD123", false},
		{"ABCD12345", false},
		{"ABCD-234", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsJoinCode(tt.code), tt.code)
	}
	assert.Equal(t, "ABCD1234", NormalizeJoinCode("  abcd1234 "))
}
