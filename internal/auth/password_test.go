package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("pw")
	require.NoError(t, err)
	second, err := HashPassword("pw")
	require.NoError(t, err)

	// Salt is randomized per call
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("pw", first))
	assert.True(t, VerifyPassword("pw", second))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
		hash      string
		expected  bool
	}{
		{
			name:      "matching password",
			plaintext: "correct horse battery staple",
			hash:      hash,
			expected:  true,
		},
		{
			name:      "wrong password",
			plaintext: "wrong",
			hash:      hash,
			expected:  false,
		},
		{
			name:      "empty password",
			plaintext: "",
			hash:      hash,
			expected:  false,
		},
		{
			name:      "malformed stored hash",
			plaintext: "correct horse battery staple",
			hash:      "not-a-bcrypt-hash",
			expected:  false,
		},
		{
			name:      "empty stored hash",
			plaintext: "anything",
			hash:      "",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VerifyPassword(tt.plaintext, tt.hash))
		})
	}
}
