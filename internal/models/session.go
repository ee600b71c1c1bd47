package models

import "time"

// StudyRecord представляет одну запись в истории занятий
type StudyRecord struct {
	Topic     string    `json:"topic"`     // тема, по которой генерировались материалы
	Timestamp time.Time `json:"timestamp"` // когда материалы были сгенерированы
	Content   string    `json:"content"`   // сгенерированный текст
}

// SessionProfile is the in-memory mirror of a user's preference fields,
// held for the duration of a login. StudyHistory and Progress exist only
// here: they are rebuilt empty on the next login and never persisted.
type SessionProfile struct {
	LearningStyle    LearningStyle  `json:"learning_style"`
	DifficultyLevel  Difficulty     `json:"difficulty_level"`
	TopicsOfInterest []string       `json:"topics_of_interest"`
	StudyHistory     []StudyRecord  `json:"study_history"`
	Progress         map[string]int `json:"progress"` // reserved, unused for now
}

// NewSessionProfile создает пустой профиль сессии с дефолтной сложностью
func NewSessionProfile() *SessionProfile {
	return &SessionProfile{
		DifficultyLevel:  DefaultDifficulty,
		TopicsOfInterest: []string{},
		StudyHistory:     []StudyRecord{},
		Progress:         map[string]int{},
	}
}

// HydrateFromUser fills the mirror from a freshly loaded account record.
// Unset account fields keep the session defaults.
func (p *SessionProfile) HydrateFromUser(user *User) {
	if user.LearningStyle != "" {
		p.LearningStyle = LearningStyle(user.LearningStyle)
	}
	p.DifficultyLevel = user.EffectiveDifficulty()
	if user.TopicsOfInterest != nil {
		p.TopicsOfInterest = user.TopicsOfInterest
	}
}

// AppendStudyRecord добавляет запись в историю занятий (append-only)
func (p *SessionProfile) AppendStudyRecord(topic, content string, at time.Time) {
	p.StudyHistory = append(p.StudyHistory, StudyRecord{
		Topic:     topic,
		Timestamp: at,
		Content:   content,
	})
}

// RecentHistory returns up to limit most recent study records, newest first.
func (p *SessionProfile) RecentHistory(limit int) []StudyRecord {
	if limit <= 0 || len(p.StudyHistory) == 0 {
		return []StudyRecord{}
	}

	start := len(p.StudyHistory) - limit
	if start < 0 {
		start = 0
	}

	// Копируем в обратном порядке, самые свежие первыми
	recent := make([]StudyRecord, 0, len(p.StudyHistory)-start)
	for i := len(p.StudyHistory) - 1; i >= start; i-- {
		recent = append(recent, p.StudyHistory[i])
	}
	return recent
}
