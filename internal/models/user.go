package models

import "time"

// User представляет учетную запись пользователя в системе
type User struct {
	Username         string    `json:"username"`           // уникальный username, primary key
	SecretHash       string    `json:"-"`                  // SHA256 хеш пароля (hex), plaintext никогда не храним
	Email            string    `json:"email"`              // уникальный email
	LearningStyle    string    `json:"learning_style"`     // стиль обучения, пустая строка пока не выбран
	DifficultyLevel  string    `json:"difficulty_level"`   // beginner | medium | advanced
	TopicsOfInterest []string  `json:"topics_of_interest"` // выбранные темы из каталога
	CreatedAt        time.Time `json:"created_at"`         // время создания, не меняется
}

// EffectiveDifficulty returns the stored difficulty level or the
// application-level default when the column has never been written.
func (u *User) EffectiveDifficulty() Difficulty {
	if u.DifficultyLevel == "" {
		return DefaultDifficulty
	}
	return Difficulty(u.DifficultyLevel)
}
