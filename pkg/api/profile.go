package api

// ProfileResponse представляет снимок профиля активной сессии
type ProfileResponse struct {
	Username         string   `json:"username"`           // владелец сессии
	LearningStyle    string   `json:"learning_style"`     // пустая строка пока стиль не выбран
	DifficultyLevel  string   `json:"difficulty_level"`   // beginner | medium | advanced
	TopicsOfInterest []string `json:"topics_of_interest"` // выбранные темы
}

// SetLearningStyleRequest представляет запрос на смену стиля обучения
type SetLearningStyleRequest struct {
	LearningStyle string `json:"learning_style"` // одно из значений каталога
}

// SetDifficultyRequest представляет запрос на смену уровня сложности
type SetDifficultyRequest struct {
	DifficultyLevel string `json:"difficulty_level"` // beginner | medium | advanced
}

// SetTopicsRequest представляет запрос на полную замену списка тем
type SetTopicsRequest struct {
	Topics []string `json:"topics"` // пустой список очищает темы
}
