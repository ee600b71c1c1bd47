package models

import "fmt"

// LearningStyle определяет предпочитаемый стиль обучения пользователя.
// Значения совпадают с вариантами анкеты в UI.
type LearningStyle string

const (
	StyleVisual         LearningStyle = "Visual (through images and diagrams)"
	StyleAuditory       LearningStyle = "Auditory (through listening and discussion)"
	StyleReadingWriting LearningStyle = "Reading/Writing (through text and notes)"
	StyleKinesthetic    LearningStyle = "Kinesthetic (through hands-on practice)"
)

// LearningStyles перечисляет все допустимые стили обучения
var LearningStyles = []LearningStyle{
	StyleVisual,
	StyleAuditory,
	StyleReadingWriting,
	StyleKinesthetic,
}

// Valid reports whether the style is one of the catalog values.
func (s LearningStyle) Valid() bool {
	for _, known := range LearningStyles {
		if s == known {
			return true
		}
	}
	return false
}

// ParseLearningStyle converts a raw string into a catalog learning style.
func ParseLearningStyle(raw string) (LearningStyle, error) {
	s := LearningStyle(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown learning style: %q", raw)
	}
	return s, nil
}

// Difficulty определяет уровень сложности учебных материалов
type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"

	// DefaultDifficulty используется пока пользователь не выбрал уровень сам
	DefaultDifficulty = DifficultyMedium
)

// Difficulties перечисляет все допустимые уровни сложности
var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyMedium,
	DifficultyAdvanced,
}

// Valid reports whether the difficulty is one of the three defined levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyMedium, DifficultyAdvanced:
		return true
	}
	return false
}

// ParseDifficulty converts a raw string into a catalog difficulty level.
func ParseDifficulty(raw string) (Difficulty, error) {
	d := Difficulty(raw)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty level: %q", raw)
	}
	return d, nil
}

// TopicCatalog перечисляет темы, доступные для выбора в профиле
var TopicCatalog = []string{
	"Mathematics",
	"Science",
	"History",
	"Literature",
	"Computer Science",
	"Languages",
	"Arts",
	"Social Studies",
	"Other",
}

// ValidTopic reports whether the topic belongs to the catalog.
func ValidTopic(topic string) bool {
	for _, known := range TopicCatalog {
		if topic == known {
			return true
		}
	}
	return false
}

// ValidateTopics checks every topic against the catalog.
// Хранилище само по себе permissive, проверка выполняется на границе API.
func ValidateTopics(topics []string) error {
	for _, topic := range topics {
		if !ValidTopic(topic) {
			return fmt.Errorf("unknown topic: %q", topic)
		}
	}
	return nil
}
