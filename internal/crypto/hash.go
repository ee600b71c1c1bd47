package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashSecret хеширует пароль пользователя с использованием SHA256
// Хеш детерминированный: одинаковый пароль всегда дает одинаковый хеш,
// это позволяет проверять учетные данные простым сравнением строк
func HashSecret(secret string) string {
	hash := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(hash[:])
}

// VerifySecret проверяет, соответствует ли пароль сохраненному хешу
func VerifySecret(secret, storedHash string) error {
	if storedHash == "" {
		return fmt.Errorf("stored hash cannot be empty")
	}

	if HashSecret(secret) != storedHash {
		return fmt.Errorf("invalid secret")
	}

	return nil
}
