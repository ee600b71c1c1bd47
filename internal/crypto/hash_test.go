package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecret_Deterministic(t *testing.T) {
	// Одинаковый пароль всегда дает одинаковый хеш
	assert.Equal(t, HashSecret("password1"), HashSecret("password1"))

	// Разные пароли дают разные хеши
	assert.NotEqual(t, HashSecret("password1"), HashSecret("password2"))
}

func TestHashSecret_KnownValue(t *testing.T) {
	// SHA256("password1") hex
	const want = "0b14d501a594442a01c6859541bcb3e8164d183d32937b851835442f69d5c94e"
	assert.Equal(t, want, HashSecret("password1"))
}

func TestHashSecret_NeverPlaintext(t *testing.T) {
	hash := HashSecret("password1")
	assert.NotContains(t, hash, "password1")
	assert.Len(t, hash, 64) // hex-encoded SHA256
}

func TestVerifySecret(t *testing.T) {
	stored := HashSecret("password1")

	require.NoError(t, VerifySecret("password1", stored))
	assert.Error(t, VerifySecret("password2", stored))
	assert.Error(t, VerifySecret("password1", ""))
}
