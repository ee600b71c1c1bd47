package genai

import (
	"fmt"

	"github.com/iudanet/studybuddy/internal/models"
)

// Шаблоны prompt'ов, параметризуются стилем обучения и сложностью

// StudyMaterialsPrompt builds the prompt for personalized study materials.
func StudyMaterialsPrompt(topic string, style models.LearningStyle, difficulty models.Difficulty) string {
	return fmt.Sprintf(`Create personalized study materials for %s considering:
- Learning style: %s
- Difficulty level: %s
Include:
1. Key concepts
2. Examples
3. Practice questions
4. Study tips`, topic, style, difficulty)
}

// PracticeTestPrompt builds the prompt for a personalized practice test.
func PracticeTestPrompt(topic string, style models.LearningStyle, difficulty models.Difficulty) string {
	return fmt.Sprintf(`Create a personalized practice test for %s considering:
- Learning style: %s
- Difficulty level: %s
Include:
1. 5 multiple-choice questions
2. 3 short-answer questions
3. 1 essay question
Format the output clearly with question numbers and options.`, topic, style, difficulty)
}

// TutorChatPrompt builds the prompt for the AI tutor chat.
func TutorChatPrompt(question string, style models.LearningStyle) string {
	return fmt.Sprintf(`As an AI tutor, provide a personalized response to: %s
Consider the user's learning style: %s
Provide a detailed, educational response with examples and explanations.`, question, style)
}
