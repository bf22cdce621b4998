package user_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/contact-service/internal/user"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "short", password: "Secret1!"},
		{name: "exactly 72 bytes", password: "Secret1!" + strings.Repeat("a", 64)},
		{name: "88 bytes", password: "Secret1!" + strings.Repeat("a", 80)},
		{name: "multibyte", password: "Пароль1!" + strings.Repeat("ж", 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := user.HashPassword(tt.password)
			require.NoError(t, err)

			assert.NotEqual(t, tt.password, hash)
			assert.True(t, user.CheckPassword(hash, tt.password))
			assert.False(t, user.CheckPassword(hash, tt.password+"x"))
		})
	}
}

func TestHashPassword_SharedPrefixBeyondBcryptLimit(t *testing.T) {
	prefix := "Secret1!" + strings.Repeat("a", 72)

	hash, err := user.HashPassword(prefix + "one")
	require.NoError(t, err)

	assert.True(t, user.CheckPassword(hash, prefix+"one"))
	assert.False(t, user.CheckPassword(hash, prefix+"two"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := user.HashPassword("Secret1!")
	require.NoError(t, err)
	second, err := user.HashPassword("Secret1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, user.CheckPassword("not-a-hash", "Secret1!"))
	assert.False(t, user.CheckPassword("", "Secret1!"))
}
