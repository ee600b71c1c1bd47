package api

import "time"

// GenerateRequest представляет запрос на генерацию учебных материалов
// или практического теста по теме
type GenerateRequest struct {
	Topic string `json:"topic"` // произвольная тема, не обязана быть из каталога
}

// GenerateResponse представляет ответ с сгенерированным текстом
type GenerateResponse struct {
	Topic   string `json:"topic"`   // тема запроса
	Content string `json:"content"` // текст от провайдера
}

// ChatRequest представляет вопрос к AI tutor
type ChatRequest struct {
	Question string `json:"question"` // вопрос пользователя
}

// ChatResponse представляет ответ AI tutor
type ChatResponse struct {
	Answer string `json:"answer"` // ответ провайдера
}

// StudyRecordResponse представляет одну запись истории занятий
type StudyRecordResponse struct {
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse представляет последние учебные сессии, самые свежие первыми
type HistoryResponse struct {
	Records []StudyRecordResponse `json:"records"`
}
